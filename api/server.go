// Package api は地球近傍天体データベースの読み取り専用APIサーバー実装を提供します。
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/jonathanmnovak/neo-capstone/config"
	"github.com/jonathanmnovak/neo-capstone/filters"
	"github.com/jonathanmnovak/neo-capstone/heatmap"
	"github.com/jonathanmnovak/neo-capstone/model"
	"github.com/jonathanmnovak/neo-capstone/store"
)

// Server はAPIサーバーの構造体です。
type Server struct {
	router  *http.ServeMux
	handler http.Handler
	db      *store.Database
	config  *config.Config
	logger  *zap.SugaredLogger
	limiter *rate.Limiter
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// ErrorResponse はエラーレスポンスの構造体です。
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// writeJSON はJSON形式でレスポンスを返却します。
func (s *Server) writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Errorw("Error encoding response", "error", err)
	}
}

// writeJSONError はJSON形式でエラーレスポンスを返却します。
func (s *Server) writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	s.writeJSON(w, statusCode, ErrorResponse{Error: message, Code: statusCode})
}

// NewServer は新しいAPIサーバーインスタンスを生成します。
func NewServer(db *store.Database, cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		router: http.NewServeMux(),
		db:     db,
		config: cfg,
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if cfg.RateLimited() {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}
	s.routes()
	s.handler = s.logMiddleware(s.rateLimitMiddleware(s.router))
	return s
}

// routes はAPIエンドポイントのルーティングを設定します。
func (s *Server) routes() {
	// ヘルスチェックエンドポイントは認証不要
	s.router.HandleFunc("GET /healthz", s.handleHealthCheck)

	securedHandler := http.NewServeMux()

	// NEO endpoints
	securedHandler.HandleFunc("GET /api/v0/neos", s.handleListNEOs)
	securedHandler.HandleFunc("GET /api/v0/neos/{designation}", s.handleGetNEO)

	// Approach endpoints
	securedHandler.HandleFunc("GET /api/v0/approaches", s.handleListApproaches)

	// 認証ミドルウェアを適用し、メインルータにマウント
	s.router.Handle("/api/", s.authMiddleware(securedHandler))

	// Graph endpoints - support both with and without .svg extension
	s.router.HandleFunc("GET /graph.svg", s.handleGetGraph)
	s.router.HandleFunc("GET /graph", s.handleGetGraph)
}

// ServeHTTP はServer構造体をhttp.Handlerとして実装します。
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string      `json:"status"`
	Stats  store.Stats `json:"stats"`
}

// handleHealthCheck はヘルスチェックエンドポイントのハンドラーです。
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Stats: s.db.Stats()})
}

// ApproachSummary is a close approach listed under its NEO.
type ApproachSummary struct {
	DatetimeUTC string  `json:"datetime_utc"`
	DistanceAU  float64 `json:"distance_au"`
	VelocityKmS float64 `json:"velocity_km_s"`
}

// NEOResponse is a NEO with its close approaches.
type NEOResponse struct {
	model.NEOFields
	Approaches []ApproachSummary `json:"approaches"`
}

func newNEOResponse(neo *model.NearEarthObject) NEOResponse {
	resp := NEOResponse{
		NEOFields:  neo.StructuredFields(),
		Approaches: make([]ApproachSummary, 0, len(neo.Approaches())),
	}
	for _, a := range neo.Approaches() {
		resp.Approaches = append(resp.Approaches, ApproachSummary{
			DatetimeUTC: a.TimeString(),
			DistanceAU:  a.Distance,
			VelocityKmS: a.Velocity,
		})
	}
	return resp
}

// handleGetNEO は仮符号でNEOを取得するハンドラーです。
func (s *Server) handleGetNEO(w http.ResponseWriter, r *http.Request) {
	designation := strings.TrimSpace(r.PathValue("designation"))

	neo, ok := s.db.GetNEOByDesignation(designation)
	if !ok {
		s.writeJSONError(w, model.ErrNEONotFound.Error(), http.StatusNotFound)
		return
	}

	s.writeJSON(w, http.StatusOK, newNEOResponse(neo))
}

// ListNEOsParams represents parameters for looking up NEOs.
type ListNEOsParams struct {
	Name  string
	Query string
	Limit *model.Limit
}

// NewListNEOsParams creates lookup parameters from HTTP request.
// Exactly one of name and q must be given.
func NewListNEOsParams(r *http.Request) (*ListNEOsParams, error) {
	query := r.URL.Query()

	params := &ListNEOsParams{
		Name:  strings.TrimSpace(query.Get("name")),
		Query: strings.TrimSpace(query.Get("q")),
	}
	if (params.Name == "") == (params.Query == "") {
		return nil, model.NewFormatError("query", "exactly one of name or q is required")
	}

	limit, err := model.NewLimit(query.Get("limit"))
	if err != nil {
		return nil, err
	}
	params.Limit = limit
	return params, nil
}

// handleListNEOs は名前の完全一致またはあいまい検索でNEOを返すハンドラーです。
func (s *Server) handleListNEOs(w http.ResponseWriter, r *http.Request) {
	params, err := NewListNEOsParams(r)
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if params.Name != "" {
		neo, ok := s.db.GetNEOByName(params.Name)
		if !ok {
			s.writeJSONError(w, model.ErrNEONotFound.Error(), http.StatusNotFound)
			return
		}
		s.writeJSON(w, http.StatusOK, newNEOResponse(neo))
		return
	}

	matches := s.db.SearchNEOs(params.Query, params.Limit.Int())
	items := make([]model.NEOFields, 0, len(matches))
	for _, neo := range matches {
		items = append(items, neo.StructuredFields())
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// QueryParams represents parameters for querying close approaches.
type QueryParams struct {
	Options filters.Options
	Limit   *model.Limit
}

// NewQueryParams creates query parameters from HTTP request.
func NewQueryParams(r *http.Request) (*QueryParams, error) {
	query := r.URL.Query()

	opts, err := filters.ParseOptions(query.Get)
	if err != nil {
		return nil, err
	}

	limit, err := model.NewLimit(query.Get("limit"))
	if err != nil {
		return nil, err
	}

	return &QueryParams{Options: opts, Limit: limit}, nil
}

// handleListApproaches は条件に一致する接近記録を返すハンドラーです。
func (s *Server) handleListApproaches(w http.ResponseWriter, r *http.Request) {
	params, err := NewQueryParams(r)
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	results := filters.Limit(s.db.Query(filters.Create(params.Options)...), params.Limit.Int())

	items := []model.ApproachRecord{}
	for approach := range results {
		items = append(items, model.StructuredRecord(approach))
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// handleGetGraph は条件に一致する接近記録の日別件数をヒートマップで返すハンドラーです。
func (s *Server) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	params, err := NewQueryParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	results := filters.Limit(s.db.Query(filters.Create(params.Options)...), params.Limit.Int())
	data := heatmap.CountByDay(results)

	opts := heatmap.DefaultOptions()
	opts.Title = "Close approaches"
	if from := params.Options.StartDate; from != nil {
		opts.From = *from
	}
	if to := params.Options.EndDate; to != nil {
		opts.To = *to
	}
	if day := params.Options.Date; day != nil {
		opts.From, opts.To = *day, *day
	}

	// 期間が逆転している、または上限を超える場合は描画しない
	if _, _, err := opts.Range(data); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write([]byte(heatmap.GenerateYearlyHeatmapSVG(data, opts)))
}

// Run はHTTPサーバーを起動します。
func (s *Server) Run(addr string) error {
	s.logger.Infow("Server starting", "addr", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
