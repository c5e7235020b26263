// Package v1specs is the transport layer of the v1 API described by
// specs/v1.yaml: wire types with their JSON codecs, the Handler and
// SecurityHandler contracts and an instrumented HTTP router.
package v1specs

import (
	"context"
	"io"
	"mime"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "gmao/internal/api/specs/v1specs"

	// MaxBodyBytes bounds every decoded request body.
	MaxBodyBytes = 1 << 20

	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	prefix         string
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
}

// WithPathPrefix mounts every route under prefix, e.g. "/v1".
func WithPathPrefix(prefix string) ServerOption {
	return func(cfg *serverConfig) {
		cfg.prefix = prefix
	}
}

// WithMeterProvider specifies a meter provider to use for creating a meter.
//
// If none is specified, the otel.GetMeterProvider() is used.
func WithMeterProvider(provider metric.MeterProvider) ServerOption {
	return func(cfg *serverConfig) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

// WithTracerProvider specifies a tracer provider to use for creating a tracer.
//
// If none is specified, the global provider is used.
func WithTracerProvider(provider trace.TracerProvider) ServerOption {
	return func(cfg *serverConfig) {
		if provider != nil {
			cfg.tracerProvider = provider
		}
	}
}

// Server routes v1 requests to a Handler.
type Server struct {
	h   Handler
	sec SecurityHandler
	mux *http.ServeMux
	// methods lists every method an operation is registered with.
	methods []string

	tracer   trace.Tracer
	requests metric.Int64Counter
	errors   metric.Int64Counter
	duration metric.Float64Histogram
}

var _ http.Handler = (*Server)(nil)

// NewServer creates a new Server.
func NewServer(h Handler, sec SecurityHandler, opts ...ServerOption) (*Server, error) {
	cfg := serverConfig{
		meterProvider:  otel.GetMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.prefix != "" && (!strings.HasPrefix(cfg.prefix, "/") || strings.HasSuffix(cfg.prefix, "/")) {
		return nil, errors.Errorf("path prefix %q must start and must not end with a slash", cfg.prefix)
	}

	s := &Server{
		h:      h,
		sec:    sec,
		mux:    http.NewServeMux(),
		tracer: cfg.tracerProvider.Tracer(instrumentationName),
	}

	meter := cfg.meterProvider.Meter(instrumentationName)
	var err error
	if s.requests, err = meter.Int64Counter("gmao.server.request_count",
		metric.WithDescription("Incoming request count total")); err != nil {
		return nil, errors.Wrap(err, "create request counter")
	}
	if s.errors, err = meter.Int64Counter("gmao.server.errors_count",
		metric.WithDescription("Server errors count total")); err != nil {
		return nil, errors.Wrap(err, "create errors counter")
	}
	if s.duration, err = meter.Float64Histogram("gmao.server.duration",
		metric.WithDescription("Measures the duration of inbound HTTP requests"),
		metric.WithUnit("ms")); err != nil {
		return nil, errors.Wrap(err, "create duration histogram")
	}

	routes := []struct {
		method, path string
		op           OperationContext
		secured      bool
		fn           operationFunc
	}{
		{http.MethodPost, "/sensors", OperationContext{CreateSensorOperation, "createSensor"}, true,
			s.handleCreateSensorRequest},
		{http.MethodGet, "/sensors", OperationContext{ListSensorsOperation, "listSensors"}, true,
			s.handleListSensorsRequest},
		{http.MethodPost, "/sensors/sensor-return", OperationContext{ReturnSensorOperation, "returnSensor"}, true,
			s.handleReturnSensorRequest},
		{http.MethodGet, "/sensors/{sensorID}/history", OperationContext{GetSensorHistoryOperation, "getSensorHistory"}, true,
			s.handleGetSensorHistoryRequest},
		{http.MethodGet, "/sensors/{sensorID}/history/export",
			OperationContext{ExportSensorHistoryOperation, "exportSensorHistory"}, true,
			s.handleExportSensorHistoryRequest},
		{http.MethodPost, "/checklists", OperationContext{CreateChecklistOperation, "createChecklist"}, true,
			s.handleCreateChecklistRequest},
		{http.MethodPost, "/checklists/responses", OperationContext{RecordResponsesOperation, "recordResponses"}, true,
			s.handleRecordResponsesRequest},
		{http.MethodPost, "/users/register", OperationContext{RegisterUserOperation, "registerUser"}, false,
			s.handleRegisterUserRequest},
		{http.MethodPost, "/users/login", OperationContext{LoginUserOperation, "loginUser"}, false,
			s.handleLoginUserRequest},
		{http.MethodGet, "/users/me", OperationContext{GetCurrentUserOperation, "getCurrentUser"}, true,
			s.handleGetCurrentUserRequest},
		{http.MethodGet, "/dashboard", OperationContext{GetDashboardOperation, "getDashboard"}, true,
			s.handleGetDashboardRequest},
	}
	for _, route := range routes {
		s.mux.Handle(route.method+" "+cfg.prefix+route.path, s.operation(route.op, route.path, route.secured, route.fn))
		if !slices.Contains(s.methods, route.method) {
			s.methods = append(s.methods, route.method)
		}
	}

	return s, nil
}

// ServeHTTP serves http request as defined by OpenAPI v3 specification,
// calling handler that matches the path or returning not found error.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, pattern := s.mux.Handler(r); pattern != "" {
		s.mux.ServeHTTP(w, r)

		return
	}

	ctx := r.Context()
	err := ErrRouteNotFound
	if allowed := s.allowedMethods(r); len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		err = &MethodNotAllowedError{Method: r.Method, Allowed: allowed}
	}
	s.writeError(ctx, w, trace.SpanFromContext(ctx), err)
}

// allowedMethods returns the methods the request path is routed for.
func (s *Server) allowedMethods(r *http.Request) []string {
	var allowed []string
	for _, method := range s.methods {
		if method == r.Method {
			continue
		}
		alt := r.Clone(r.Context())
		alt.Method = method
		if _, pattern := s.mux.Handler(alt); pattern != "" {
			allowed = append(allowed, method)
		}
	}
	slices.Sort(allowed)

	return allowed
}

// operationFunc decodes the request, calls the Handler and writes the
// response. A returned error is reported through Handler.NewError and must
// only be returned before anything was written.
type operationFunc func(ctx context.Context, w http.ResponseWriter, r *http.Request) error

func (s *Server) operation(op OperationContext, route string, secured bool, fn operationFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		attrs := []attribute.KeyValue{
			attribute.String("oas.operation", op.ID),
			attribute.String("http.request.method", r.Method),
			attribute.String("http.route", route),
		}
		ctx, span := s.tracer.Start(r.Context(), op.Name,
			trace.WithAttributes(attrs...),
			trace.WithSpanKind(trace.SpanKindServer),
		)
		defer span.End()
		s.requests.Add(ctx, 1, metric.WithAttributes(attrs...))
		defer func() {
			elapsed := time.Since(start)
			s.duration.Record(ctx, float64(elapsed)/float64(time.Millisecond), metric.WithAttributes(attrs...))
		}()

		err := func() error {
			if secured {
				var err error
				if ctx, err = s.securityBearerAuth(ctx, op, r); err != nil {
					return err
				}
			}

			return fn(ctx, w, r)
		}()
		if err != nil {
			span.RecordError(err)
			s.errors.Add(ctx, 1, metric.WithAttributes(attrs...))
			s.writeError(ctx, w, span, err)
		}
	})
}

func (s *Server) securityBearerAuth(ctx context.Context, op OperationContext, r *http.Request) (context.Context, error) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return ctx, &SecurityError{OperationContext: op, Security: "BearerAuth", Err: ErrSecurityRequirementIsNotSatisfied}
	}

	sctx, err := s.sec.HandleBearerAuth(ctx, op.Name, BearerAuth{Token: token})
	if err != nil {
		return ctx, &SecurityError{OperationContext: op, Security: "BearerAuth", Err: err}
	}

	return sctx, nil
}

func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, span trace.Span, err error) {
	var errRes *ErrorStatusCode
	if !errors.As(err, &errRes) {
		errRes = s.h.NewError(ctx, err)
	}
	span.SetStatus(codes.Error, errRes.Response.Code)
	if encodeErr := encodeJSON(w, errRes.StatusCode, &errRes.Response); encodeErr != nil {
		span.RecordError(encodeErr)
	}
}

type jsonEncoder interface {
	Encode(e *jx.Encoder)
}

type jsonDecoder interface {
	Decode(d *jx.Decoder) error
}

func encodeJSON(w http.ResponseWriter, status int, v jsonEncoder) error {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	v.Encode(e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(e.Bytes()); err != nil {
		return errors.Wrap(err, "write")
	}

	return nil
}

// respond writes a success body. Write failures are only recorded on the span.
func respond(ctx context.Context, w http.ResponseWriter, status int, v jsonEncoder) {
	if err := encodeJSON(w, status, v); err != nil {
		trace.SpanFromContext(ctx).RecordError(err)
	}
}

func requestContentType(r *http.Request) (string, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return "", errors.New("missing Content-Type")
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", errors.Wrap(err, "parse Content-Type")
	}

	return mediaType, nil
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	buf, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	if len(buf) == 0 {
		return nil, errors.New("empty body")
	}

	return buf, nil
}

func decodeJSONRequest(w http.ResponseWriter, r *http.Request, op OperationContext, v jsonDecoder) error {
	err := func() error {
		ct, err := requestContentType(r)
		if err != nil {
			return err
		}
		if ct != contentTypeJSON {
			return errors.Errorf("unexpected Content-Type: %s", ct)
		}
		buf, err := readBody(w, r)
		if err != nil {
			return err
		}

		return v.Decode(jx.DecodeBytes(buf))
	}()
	if err != nil {
		return &DecodeRequestError{OperationContext: op, Err: err}
	}

	return nil
}

func decodeSensorIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("sensorID"))
	if err != nil {
		return uuid.Nil, &DecodeParamError{Name: "sensorID", In: "path", Err: err}
	}

	return id, nil
}

func optQuery(q url.Values, name string) OptString {
	if !q.Has(name) {
		return OptString{}
	}

	return NewOptString(q.Get(name))
}

func (s *Server) handleCreateSensorRequest(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req CreateSensorRequest
	if err := decodeJSONRequest(w, r, OperationContext{CreateSensorOperation, "createSensor"}, &req); err != nil {
		return err
	}
	res, err := s.h.CreateSensor(ctx, &req)
	if err != nil {
		return err //nolint: wrapcheck
	}

	respond(ctx, w, http.StatusCreated, res)

	return nil
}

func (s *Server) handleListSensorsRequest(ctx context.Context, w http.ResponseWriter, _ *http.Request) error {
	res, err := s.h.ListSensors(ctx)
	if err != nil {
		return err //nolint: wrapcheck
	}
	if res == nil {
		res = SensorList{}
	}

	respond(ctx, w, http.StatusOK, res)

	return nil
}

func (s *Server) handleReturnSensorRequest(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req SensorReturnRequest
	if err := decodeJSONRequest(w, r, OperationContext{ReturnSensorOperation, "returnSensor"}, &req); err != nil {
		return err
	}
	res, err := s.h.ReturnSensor(ctx, &req)
	if err != nil {
		return err //nolint: wrapcheck
	}

	respond(ctx, w, http.StatusOK, res)

	return nil
}

func (s *Server) handleGetSensorHistoryRequest(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := decodeSensorIDParam(r)
	if err != nil {
		return err
	}
	q := r.URL.Query()
	res, err := s.h.GetSensorHistory(ctx, GetSensorHistoryParams{
		SensorID:  id,
		Chantier:  optQuery(q, "chantier"),
		StartDate: optQuery(q, "start_date"),
		EndDate:   optQuery(q, "end_date"),
	})
	if err != nil {
		return err //nolint: wrapcheck
	}

	respond(ctx, w, http.StatusOK, res)

	return nil
}

func (s *Server) handleExportSensorHistoryRequest(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := decodeSensorIDParam(r)
	if err != nil {
		return err
	}
	q := r.URL.Query()
	params := ExportSensorHistoryParams{
		SensorID:  id,
		Chantier:  optQuery(q, "chantier"),
		StartDate: optQuery(q, "start_date"),
		EndDate:   optQuery(q, "end_date"),
	}
	if q.Has("format") {
		format := ExportFormat(q.Get("format"))
		if err := format.Validate(); err != nil {
			return &DecodeParamError{Name: "format", In: "query", Err: err}
		}
		params.Format = NewOptExportFormat(format)
	}

	res, err := s.h.ExportSensorHistory(ctx, params)
	if err != nil {
		return err //nolint: wrapcheck
	}

	h := w.Header()
	h.Set("Content-Type", res.ContentType)
	if res.ContentDisposition != "" {
		h.Set("Content-Disposition", res.ContentDisposition)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, res.Data); err != nil {
		trace.SpanFromContext(ctx).RecordError(err)
	}

	return nil
}

func (s *Server) handleCreateChecklistRequest(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req CreateChecklistRequest
	if err := decodeJSONRequest(w, r, OperationContext{CreateChecklistOperation, "createChecklist"}, &req); err != nil {
		return err
	}
	res, err := s.h.CreateChecklist(ctx, &req)
	if err != nil {
		return err //nolint: wrapcheck
	}

	respond(ctx, w, http.StatusCreated, res)

	return nil
}

func (s *Server) handleRecordResponsesRequest(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req RecordResponsesRequest
	if err := decodeJSONRequest(w, r, OperationContext{RecordResponsesOperation, "recordResponses"}, &req); err != nil {
		return err
	}
	res, err := s.h.RecordResponses(ctx, &req)
	if err != nil {
		return err //nolint: wrapcheck
	}
	if res == nil {
		res = ChecklistResponseList{}
	}

	respond(ctx, w, http.StatusCreated, res)

	return nil
}

func (s *Server) handleRegisterUserRequest(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req RegisterRequest
	if err := decodeJSONRequest(w, r, OperationContext{RegisterUserOperation, "registerUser"}, &req); err != nil {
		return err
	}
	res, err := s.h.RegisterUser(ctx, &req)
	if err != nil {
		return err //nolint: wrapcheck
	}

	respond(ctx, w, http.StatusCreated, res)

	return nil
}

func (s *Server) decodeLoginUserRequest(w http.ResponseWriter, r *http.Request) (LoginUserReq, error) {
	ct, err := requestContentType(r)
	if err != nil {
		return nil, err
	}

	switch ct {
	case contentTypeJSON:
		buf, err := readBody(w, r)
		if err != nil {
			return nil, err
		}
		var req LoginRequest
		if err := req.Decode(jx.DecodeBytes(buf)); err != nil {
			return nil, err
		}

		return &req, nil
	case contentTypeForm:
		r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
		if err := r.ParseForm(); err != nil {
			return nil, errors.Wrap(err, "parse form")
		}
		for _, field := range []string{"username", "password"} {
			if !r.PostForm.Has(field) {
				return nil, errors.Errorf("field %q is required", field)
			}
		}

		return &LoginForm{
			Username: r.PostForm.Get("username"),
			Password: r.PostForm.Get("password"),
		}, nil
	default:
		return nil, errors.Errorf("unexpected Content-Type: %s", ct)
	}
}

func (s *Server) handleLoginUserRequest(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	req, err := s.decodeLoginUserRequest(w, r)
	if err != nil {
		return &DecodeRequestError{OperationContext: OperationContext{LoginUserOperation, "loginUser"}, Err: err}
	}
	res, err := s.h.LoginUser(ctx, req)
	if err != nil {
		return err //nolint: wrapcheck
	}

	respond(ctx, w, http.StatusOK, res)

	return nil
}

func (s *Server) handleGetCurrentUserRequest(ctx context.Context, w http.ResponseWriter, _ *http.Request) error {
	res, err := s.h.GetCurrentUser(ctx)
	if err != nil {
		return err //nolint: wrapcheck
	}

	respond(ctx, w, http.StatusOK, res)

	return nil
}

func (s *Server) handleGetDashboardRequest(ctx context.Context, w http.ResponseWriter, _ *http.Request) error {
	res, err := s.h.GetDashboard(ctx)
	if err != nil {
		return err //nolint: wrapcheck
	}

	respond(ctx, w, http.StatusOK, res)

	return nil
}
