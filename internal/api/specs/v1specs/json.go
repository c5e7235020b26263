package v1specs

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

func encodeDateTime(e *jx.Encoder, t time.Time) {
	e.Str(t.UTC().Format(time.RFC3339Nano))
}

func decodeDateTime(d *jx.Decoder) (time.Time, error) {
	s, err := d.Str()
	if err != nil {
		return time.Time{}, err //nolint: wrapcheck
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "parse date-time")
	}

	return t, nil
}

func decodeUUID(d *jx.Decoder) (uuid.UUID, error) {
	s, err := d.Str()
	if err != nil {
		return uuid.Nil, err //nolint: wrapcheck
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "parse uuid")
	}

	return id, nil
}

// skipNull consumes a JSON null and reports whether one was found.
func skipNull(d *jx.Decoder) (bool, error) {
	if d.Next() != jx.Null {
		return false, nil
	}

	return true, d.Null() //nolint: wrapcheck
}

// checkRequired reports the first field of fields whose bit is not set in got.
func checkRequired(got uint8, fields ...string) error {
	for i, f := range fields {
		if got&(1<<i) == 0 {
			return errors.Errorf("field %q is required", f)
		}
	}

	return nil
}

func decodeString(d *jx.Decoder, field string, v *string) error {
	s, err := d.Str()
	if err != nil {
		return errors.Wrapf(err, "decode field %q", field)
	}
	*v = s

	return nil
}

func decodeBool(d *jx.Decoder, field string, v *bool) error {
	b, err := d.Bool()
	if err != nil {
		return errors.Wrapf(err, "decode field %q", field)
	}
	*v = b

	return nil
}

func (o *OptString) decode(d *jx.Decoder, field string) error {
	null, err := skipNull(d)
	if err != nil {
		return errors.Wrapf(err, "decode field %q", field)
	}
	if null {
		return nil
	}
	var s string
	if err := decodeString(d, field, &s); err != nil {
		return err
	}
	o.SetTo(s)

	return nil
}

func (o *OptUUID) decode(d *jx.Decoder, field string) error {
	null, err := skipNull(d)
	if err != nil {
		return errors.Wrapf(err, "decode field %q", field)
	}
	if null {
		return nil
	}
	id, err := decodeUUID(d)
	if err != nil {
		return errors.Wrapf(err, "decode field %q", field)
	}
	o.SetTo(id)

	return nil
}

func (o *OptDateTime) decode(d *jx.Decoder, field string) error {
	null, err := skipNull(d)
	if err != nil {
		return errors.Wrapf(err, "decode field %q", field)
	}
	if null {
		return nil
	}
	t, err := decodeDateTime(d)
	if err != nil {
		return errors.Wrapf(err, "decode field %q", field)
	}
	o.SetTo(t)

	return nil
}

func (o OptString) encode(e *jx.Encoder, field string) {
	if v, ok := o.Get(); ok {
		e.FieldStart(field)
		e.Str(v)
	}
}

func (o OptUUID) encode(e *jx.Encoder, field string) {
	if v, ok := o.Get(); ok {
		e.FieldStart(field)
		e.Str(v.String())
	}
}

func (o OptDateTime) encode(e *jx.Encoder, field string) {
	if v, ok := o.Get(); ok {
		e.FieldStart(field)
		encodeDateTime(e, v)
	}
}

// Encode encodes Error as json.
func (s *Error) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(s.Code)
	e.FieldStart("message")
	e.Str(s.Message)
	e.ObjEnd()
}

// Decode decodes Error from json.
func (s *Error) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode Error to nil")
	}
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "code":
			return decodeString(d, "code", &s.Code)
		case "message":
			return decodeString(d, "message", &s.Message)
		default:
			return d.Skip()
		}
	}); err != nil {
		return errors.Wrap(err, "decode Error")
	}

	return nil
}

// Decode decodes CreateSensorRequest from json.
func (s *CreateSensorRequest) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode CreateSensorRequest to nil")
	}
	var requiredBitSet uint8
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "reference":
			requiredBitSet |= 1 << 0
			return decodeString(d, "reference", &s.Reference)
		case "type":
			requiredBitSet |= 1 << 1
			return decodeString(d, "type", &s.Type)
		case "subtype":
			requiredBitSet |= 1 << 2
			return decodeString(d, "subtype", &s.Subtype)
		case "status":
			var v string
			if err := decodeString(d, "status", &v); err != nil {
				return err
			}
			if err := SensorStatus(v).Validate(); err != nil {
				return errors.Wrap(err, "validate field \"status\"")
			}
			s.Status.SetTo(SensorStatus(v))

			return nil
		case "chantier":
			return s.Chantier.decode(d, "chantier")
		default:
			return d.Skip()
		}
	}); err != nil {
		return errors.Wrap(err, "decode CreateSensorRequest")
	}

	if err := checkRequired(requiredBitSet, "reference", "type", "subtype"); err != nil {
		return errors.Wrap(err, "decode CreateSensorRequest")
	}

	return nil
}

// Encode encodes Sensor as json.
func (s *Sensor) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(s.ID.String())
	e.FieldStart("reference")
	e.Str(s.Reference)
	e.FieldStart("type")
	e.Str(s.Type)
	e.FieldStart("subtype")
	e.Str(s.Subtype)
	e.FieldStart("status")
	e.Str(string(s.Status))
	s.Chantier.encode(e, "chantier")
	s.CreatedBy.encode(e, "created_by")
	e.FieldStart("created_at")
	encodeDateTime(e, s.CreatedAt)
	e.ObjEnd()
}

// Encode encodes SensorList as json.
func (s SensorList) Encode(e *jx.Encoder) {
	e.ArrStart()
	for i := range s {
		s[i].Encode(e)
	}
	e.ArrEnd()
}

// Decode decodes SensorReturnRequest from json.
func (s *SensorReturnRequest) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode SensorReturnRequest to nil")
	}
	var requiredBitSet uint8
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "sensor_id":
			requiredBitSet |= 1 << 0
			id, err := decodeUUID(d)
			if err != nil {
				return errors.Wrap(err, "decode field \"sensor_id\"")
			}
			s.SensorID = id

			return nil
		case "chantier":
			requiredBitSet |= 1 << 1
			return decodeString(d, "chantier", &s.Chantier)
		case "returned_at":
			return s.ReturnedAt.decode(d, "returned_at")
		default:
			return d.Skip()
		}
	}); err != nil {
		return errors.Wrap(err, "decode SensorReturnRequest")
	}

	if err := checkRequired(requiredBitSet, "sensor_id", "chantier"); err != nil {
		return errors.Wrap(err, "decode SensorReturnRequest")
	}

	return nil
}

// Encode encodes ItemRef as json.
func (s *ItemRef) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(s.ID.String())
	e.FieldStart("label")
	e.Str(s.Label)
	e.ObjEnd()
}

// Encode encodes ReturnChecklist as json.
func (s *ReturnChecklist) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("checklist_id")
	e.Str(s.ChecklistID.String())
	e.FieldStart("before_maintenance")
	e.ArrStart()
	for i := range s.BeforeMaintenance {
		s.BeforeMaintenance[i].Encode(e)
	}
	e.ArrEnd()
	e.FieldStart("after_maintenance")
	e.ArrStart()
	for i := range s.AfterMaintenance {
		s.AfterMaintenance[i].Encode(e)
	}
	e.ArrEnd()
	e.ObjEnd()
}

// Decode decodes CreateChecklistItem from json.
func (s *CreateChecklistItem) Decode(d *jx.Decoder) error {
	var requiredBitSet uint8
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "label":
			requiredBitSet |= 1 << 0
			return decodeString(d, "label", &s.Label)
		case "is_before":
			requiredBitSet |= 1 << 1
			return decodeBool(d, "is_before", &s.IsBefore)
		default:
			return d.Skip()
		}
	}); err != nil {
		return errors.Wrap(err, "decode CreateChecklistItem")
	}

	if err := checkRequired(requiredBitSet, "label", "is_before"); err != nil {
		return errors.Wrap(err, "decode CreateChecklistItem")
	}

	return nil
}

// Decode decodes CreateChecklistRequest from json.
func (s *CreateChecklistRequest) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode CreateChecklistRequest to nil")
	}
	var requiredBitSet uint8
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "type":
			requiredBitSet |= 1 << 0
			return decodeString(d, "type", &s.Type)
		case "subtype":
			requiredBitSet |= 1 << 1
			return decodeString(d, "subtype", &s.Subtype)
		case "items":
			requiredBitSet |= 1 << 2
			s.Items = make([]CreateChecklistItem, 0)
			if err := d.Arr(func(d *jx.Decoder) error {
				var item CreateChecklistItem
				if err := item.Decode(d); err != nil {
					return err
				}
				s.Items = append(s.Items, item)

				return nil
			}); err != nil {
				return errors.Wrap(err, "decode field \"items\"")
			}

			return nil
		default:
			return d.Skip()
		}
	}); err != nil {
		return errors.Wrap(err, "decode CreateChecklistRequest")
	}

	if err := checkRequired(requiredBitSet, "type", "subtype", "items"); err != nil {
		return errors.Wrap(err, "decode CreateChecklistRequest")
	}

	return nil
}

// Encode encodes Checklist as json.
func (s *Checklist) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(s.ID.String())
	e.FieldStart("type")
	e.Str(s.Type)
	e.FieldStart("subtype")
	e.Str(s.Subtype)
	e.FieldStart("items")
	e.ArrStart()
	for _, item := range s.Items {
		e.ObjStart()
		e.FieldStart("id")
		e.Str(item.ID.String())
		e.FieldStart("label")
		e.Str(item.Label)
		e.FieldStart("is_before")
		e.Bool(item.IsBefore)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.FieldStart("created_at")
	encodeDateTime(e, s.CreatedAt)
	e.ObjEnd()
}

// Decode decodes NewChecklistResponse from json.
func (s *NewChecklistResponse) Decode(d *jx.Decoder) error {
	var requiredBitSet uint8
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "sensor_id":
			requiredBitSet |= 1 << 0
			id, err := decodeUUID(d)
			if err != nil {
				return errors.Wrap(err, "decode field \"sensor_id\"")
			}
			s.SensorID = id

			return nil
		case "item_id":
			requiredBitSet |= 1 << 1
			id, err := decodeUUID(d)
			if err != nil {
				return errors.Wrap(err, "decode field \"item_id\"")
			}
			s.ItemID = id

			return nil
		case "is_checked":
			requiredBitSet |= 1 << 2
			return decodeBool(d, "is_checked", &s.IsChecked)
		case "is_before":
			requiredBitSet |= 1 << 3
			return decodeBool(d, "is_before", &s.IsBefore)
		case "user_id":
			return s.UserID.decode(d, "user_id")
		default:
			return d.Skip()
		}
	}); err != nil {
		return errors.Wrap(err, "decode NewChecklistResponse")
	}

	if err := checkRequired(requiredBitSet, "sensor_id", "item_id", "is_checked", "is_before"); err != nil {
		return errors.Wrap(err, "decode NewChecklistResponse")
	}

	return nil
}

// Decode decodes RecordResponsesRequest from json.
func (s *RecordResponsesRequest) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode RecordResponsesRequest to nil")
	}
	var requiredBitSet uint8
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "responses":
			requiredBitSet |= 1 << 0
			s.Responses = make([]NewChecklistResponse, 0)
			if err := d.Arr(func(d *jx.Decoder) error {
				var r NewChecklistResponse
				if err := r.Decode(d); err != nil {
					return err
				}
				s.Responses = append(s.Responses, r)

				return nil
			}); err != nil {
				return errors.Wrap(err, "decode field \"responses\"")
			}

			return nil
		default:
			return d.Skip()
		}
	}); err != nil {
		return errors.Wrap(err, "decode RecordResponsesRequest")
	}

	if err := checkRequired(requiredBitSet, "responses"); err != nil {
		return errors.Wrap(err, "decode RecordResponsesRequest")
	}

	return nil
}

// Encode encodes ChecklistResponse as json.
func (s *ChecklistResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(s.ID.String())
	e.FieldStart("sensor_id")
	e.Str(s.SensorID.String())
	e.FieldStart("item_id")
	e.Str(s.ItemID.String())
	e.FieldStart("user_id")
	e.Str(s.UserID.String())
	e.FieldStart("is_checked")
	e.Bool(s.IsChecked)
	e.FieldStart("is_before")
	e.Bool(s.IsBefore)
	e.FieldStart("checked_at")
	encodeDateTime(e, s.CheckedAt)
	e.ObjEnd()
}

// Encode encodes ChecklistResponseList as json.
func (s ChecklistResponseList) Encode(e *jx.Encoder) {
	e.ArrStart()
	for i := range s {
		s[i].Encode(e)
	}
	e.ArrEnd()
}

// Encode encodes Movement as json.
func (s *Movement) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(s.ID.String())
	e.FieldStart("chantier")
	e.Str(s.Chantier)
	s.DepartedAt.encode(e, "departed_at")
	s.ReturnedAt.encode(e, "returned_at")
	s.Comment.encode(e, "comment")
	e.ObjEnd()
}

// Encode encodes User as json.
func (s *User) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(s.ID.String())
	e.FieldStart("name")
	e.Str(s.Name)
	e.FieldStart("email")
	e.Str(s.Email)
	e.FieldStart("role")
	e.Str(string(s.Role))
	e.FieldStart("created_at")
	encodeDateTime(e, s.CreatedAt)
	e.ObjEnd()
}

// Encode encodes ResponseDetail as json.
func (s *ResponseDetail) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("item_id")
	e.Str(s.ItemID.String())
	e.FieldStart("label")
	e.Str(s.Label)
	e.FieldStart("is_checked")
	e.Bool(s.IsChecked)
	e.FieldStart("is_before")
	e.Bool(s.IsBefore)
	e.FieldStart("user")
	s.User.Encode(e)
	e.FieldStart("checked_at")
	encodeDateTime(e, s.CheckedAt)
	e.ObjEnd()
}

func encodeResponseDetails(e *jx.Encoder, field string, details []ResponseDetail) {
	e.FieldStart(field)
	e.ArrStart()
	for i := range details {
		details[i].Encode(e)
	}
	e.ArrEnd()
}

// Encode encodes SensorHistory as json.
func (s *SensorHistory) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("sensor_id")
	e.Str(s.SensorID.String())
	e.FieldStart("type")
	e.Str(s.Type)
	e.FieldStart("subtype")
	e.Str(s.Subtype)
	e.FieldStart("movements")
	e.ArrStart()
	for i := range s.Movements {
		s.Movements[i].Encode(e)
	}
	e.ArrEnd()
	e.FieldStart("responses")
	e.ObjStart()
	encodeResponseDetails(e, "before", s.Responses.Before)
	encodeResponseDetails(e, "after", s.Responses.After)
	e.ObjEnd()
	e.ObjEnd()
}

// Decode decodes RegisterRequest from json.
func (s *RegisterRequest) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode RegisterRequest to nil")
	}
	var requiredBitSet uint8
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "name":
			requiredBitSet |= 1 << 0
			return decodeString(d, "name", &s.Name)
		case "email":
			requiredBitSet |= 1 << 1
			return decodeString(d, "email", &s.Email)
		case "password":
			requiredBitSet |= 1 << 2
			return decodeString(d, "password", &s.Password)
		case "registration_key":
			requiredBitSet |= 1 << 3
			return decodeString(d, "registration_key", &s.RegistrationKey)
		default:
			return d.Skip()
		}
	}); err != nil {
		return errors.Wrap(err, "decode RegisterRequest")
	}

	if err := checkRequired(requiredBitSet, "name", "email", "password", "registration_key"); err != nil {
		return errors.Wrap(err, "decode RegisterRequest")
	}

	return nil
}

// Decode decodes LoginRequest from json.
func (s *LoginRequest) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode LoginRequest to nil")
	}
	var requiredBitSet uint8
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "email":
			requiredBitSet |= 1 << 0
			return decodeString(d, "email", &s.Email)
		case "password":
			requiredBitSet |= 1 << 1
			return decodeString(d, "password", &s.Password)
		default:
			return d.Skip()
		}
	}); err != nil {
		return errors.Wrap(err, "decode LoginRequest")
	}

	if err := checkRequired(requiredBitSet, "email", "password"); err != nil {
		return errors.Wrap(err, "decode LoginRequest")
	}

	return nil
}

// Encode encodes Token as json.
func (s *Token) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("access_token")
	e.Str(s.AccessToken)
	e.FieldStart("token_type")
	e.Str(s.TokenType)
	e.FieldStart("expires_at")
	encodeDateTime(e, s.ExpiresAt)
	e.ObjEnd()
}

// Encode encodes Dashboard as json.
func (s *Dashboard) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("returned_this_month")
	e.Int64(s.ReturnedThisMonth)
	e.FieldStart("checklist_completion_rate")
	e.Float64(s.ChecklistCompletionRate)
	e.FieldStart("mean_days_between_returns")
	e.Float64(s.MeanDaysBetweenReturns)
	e.FieldStart("top_sensors")
	e.ArrStart()
	for _, a := range s.TopSensors {
		e.ObjStart()
		e.FieldStart("sensor_id")
		e.Str(a.SensorID.String())
		e.FieldStart("count")
		e.Int64(a.Count)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.FieldStart("top_technicians")
	e.ArrStart()
	for _, a := range s.TopTechnicians {
		e.ObjStart()
		e.FieldStart("name")
		e.Str(a.Name)
		e.FieldStart("count")
		e.Int64(a.Count)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
}
