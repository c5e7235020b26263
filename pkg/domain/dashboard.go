package domain

// SensorActivity counts the movements recorded for a sensor.
type SensorActivity struct {
	SensorID SensorID `json:"sensorId"`
	Count    int64    `json:"count"`
}

// TechnicianActivity counts the responses submitted by a user.
type TechnicianActivity struct {
	UserID UserID `json:"-"`
	Name   string `json:"name"`
	Count  int64  `json:"count"`
}

// ResponseCounts holds the total and checked number of responses.
type ResponseCounts struct {
	Total   int64
	Checked int64
}

// Dashboard is the operational rollup shown to managers.
type Dashboard struct {
	ReturnedThisMonth       int64                `json:"returnedThisMonth"`
	ChecklistCompletionRate float64              `json:"checklistCompletionRate"`
	MeanDaysBetweenReturns  float64              `json:"meanDaysBetweenReturns"`
	TopSensors              []SensorActivity     `json:"topSensors"`
	TopTechnicians          []TechnicianActivity `json:"topTechnicians"`
}
