package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/prevent-risk-mcp-server/internal/domain"
	"github.com/prevent-risk-mcp-server/pkg/prevent"
)

const modelReference = "Khan SS, et al. Development and Validation of the American Heart Association's PREVENT Equations. Circulation. 2024;149:430-449."

const (
	defaultHistoryPageSize = 20
	maxHistoryPageSize     = 100
)

// RiskServiceConfig represents configuration for the risk service
type RiskServiceConfig struct {
	CacheMaxItems  int // 0 disables the result cache
	BatchLimit     int
	MaxConcurrency int

	// SharedCache, when set, is consulted after the in-process cache.
	SharedCache SharedCache
	// History, when set, records every calculation.
	History domain.CalculationStore
}

// CacheStats represents result cache statistics
type CacheStats struct {
	Hits       int64 `json:"hits"`
	SharedHits int64 `json:"shared_hits"`
	Misses     int64 `json:"misses"`
	Entries    int   `json:"entries"`
}

// cachedCalculation is what the caches store for one canonical input.
type cachedCalculation struct {
	Result   prevent.RiskResult `json:"result"`
	Validity prevent.Validity   `json:"validity"`
}

// RiskService wraps the PREVENT engine for the transports: it checks
// required fields, attaches interpretation labels and caches results.
type RiskService struct {
	logger         *logrus.Logger
	cache          *lru.Cache[string, cachedCalculation]
	shared         *breakerCache
	history        domain.CalculationStore
	batchLimit     int
	maxConcurrency int

	hits       atomic.Int64
	sharedHits atomic.Int64
	misses     atomic.Int64
}

// NewRiskService creates a new risk service
func NewRiskService(logger *logrus.Logger, config RiskServiceConfig) (*RiskService, error) {
	if config.BatchLimit <= 0 {
		config.BatchLimit = 100
	}
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = runtime.NumCPU()
	}

	s := &RiskService{
		logger:         logger,
		history:        config.History,
		batchLimit:     config.BatchLimit,
		maxConcurrency: config.MaxConcurrency,
	}

	if config.SharedCache != nil {
		s.shared = newBreakerCache(config.SharedCache, logger)
	}

	if config.CacheMaxItems > 0 {
		cache, err := lru.New[string, cachedCalculation](config.CacheMaxItems)
		if err != nil {
			return nil, fmt.Errorf("failed to create result cache: %w", err)
		}
		s.cache = cache
	}

	return s, nil
}

// Calculate computes the six PREVENT scores for one patient.
func (s *RiskService) Calculate(ctx context.Context, req *domain.RiskRequest) (*domain.RiskResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	startTime := time.Now()

	in, err := ToPatientInputs(req)
	if err != nil {
		return nil, fmt.Errorf("invalid risk request: %w", err)
	}

	calc, cached := s.compute(ctx, in)
	resp := buildResponse(in, calc, cached)
	resp.ProcessingTime = time.Since(startTime)

	if s.history != nil {
		if err := s.history.Save(ctx, domain.NewCalculationRecord(resp)); err != nil {
			s.logger.WithError(err).WithField("calculation_id", resp.ID).Warn("Failed to record calculation")
		}
	}

	s.logger.WithFields(logrus.Fields(resp.LogFields())).Debug("Computed PREVENT risk")

	return resp, nil
}

// CalculateBatch computes every patient independently and returns the items
// in input order. A malformed patient fails only its own item.
func (s *RiskService) CalculateBatch(ctx context.Context, reqs []domain.RiskRequest) (*domain.BatchResponse, error) {
	if len(reqs) == 0 {
		return nil, domain.NewValidationError("patients", "at least one patient is required", 0)
	}
	if len(reqs) > s.batchLimit {
		return nil, domain.NewMCPError(
			domain.ErrBatchTooLarge,
			fmt.Sprintf("batch of %d patients exceeds the limit of %d", len(reqs), s.batchLimit),
			"",
			"",
		)
	}

	s.logger.WithField("batch_size", len(reqs)).Info("Starting batch risk calculation")

	items := make([]domain.BatchItem, len(reqs))
	semaphore := make(chan struct{}, s.maxConcurrency)
	var wg sync.WaitGroup

	for i := range reqs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			items[idx].Index = idx

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()
			case <-ctx.Done():
				items[idx].Error = domain.ToMCPError(ctx.Err(), "")
				return
			}

			resp, err := s.Calculate(ctx, &reqs[idx])
			if err != nil {
				items[idx].Error = domain.ToMCPError(err, "")
				return
			}
			items[idx].Result = resp
		}(i)
	}

	wg.Wait()

	out := &domain.BatchResponse{Items: items}
	for _, item := range items {
		if item.Error != nil {
			out.Failed++
		} else {
			out.Succeeded++
		}
	}

	s.logger.WithFields(logrus.Fields{
		"batch_size": len(reqs),
		"successful": out.Succeeded,
		"failed":     out.Failed,
	}).Info("Completed batch risk calculation")

	return out, nil
}

// Interpret categorizes an already computed percentage.
func (s *RiskService) Interpret(req *domain.InterpretRequest) (*domain.InterpretResponse, error) {
	if req == nil {
		return nil, domain.NewValidationError("request", "is required", nil)
	}

	endpoint := prevent.Endpoint(strings.ToLower(strings.TrimSpace(req.Endpoint)))
	if !endpoint.IsValid() {
		return nil, domain.NewValidationError("endpoint", "must be one of cvd, ascvd, hf", req.Endpoint)
	}
	horizon := prevent.Horizon(req.Horizon)
	if !horizon.IsValid() {
		return nil, domain.NewValidationError("horizon_years", "must be 10 or 30", req.Horizon)
	}
	if req.Percent != nil && (*req.Percent < 0 || *req.Percent > 100) {
		return nil, domain.NewValidationError("percent", "must be between 0 and 100", *req.Percent)
	}

	category := prevent.Interpret(endpoint, horizon, req.Percent)
	return &domain.InterpretResponse{
		Endpoint:    endpoint,
		Horizon:     horizon,
		Percent:     req.Percent,
		Category:    category,
		Description: category.Description(),
		Bands:       prevent.Bands(horizon),
	}, nil
}

// ModelInfo describes the equations and the accepted input ranges.
func (s *RiskService) ModelInfo() *domain.ModelInfo {
	return &domain.ModelInfo{
		Name:             "AHA PREVENT",
		Reference:        modelReference,
		Models:           []prevent.Model{prevent.BaseModel, prevent.FullModel},
		Endpoints:        prevent.Endpoints,
		Horizons:         prevent.Horizons,
		MaxThirtyYearAge: prevent.MaxThirtyYearAge,
		Inputs:           prevent.InputRanges(),
		TenYearBands:     prevent.Bands(prevent.TenYear),
		ThirtyYearBands:  prevent.Bands(prevent.ThirtyYear),
	}
}

// GetCalculation returns a recorded calculation by ID.
func (s *RiskService) GetCalculation(ctx context.Context, id string) (*domain.CalculationRecord, error) {
	if s.history == nil {
		return nil, domain.NewMCPError(domain.ErrHistoryOff, "calculation history is not enabled", "", "")
	}
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "is required", id)
	}

	rec, err := s.history.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load calculation %s: %w", id, err)
	}
	if rec == nil {
		return nil, domain.NewMCPError(domain.ErrNotFound, "calculation not found", id, "")
	}
	return rec, nil
}

// ListCalculations returns recorded calculations newest first. A zero limit
// selects the default page size.
func (s *RiskService) ListCalculations(ctx context.Context, limit, offset int) (*domain.CalculationPage, error) {
	if s.history == nil {
		return nil, domain.NewMCPError(domain.ErrHistoryOff, "calculation history is not enabled", "", "")
	}
	if limit == 0 {
		limit = defaultHistoryPageSize
	}
	if limit < 0 || limit > maxHistoryPageSize {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", maxHistoryPageSize), limit)
	}
	if offset < 0 {
		return nil, domain.NewValidationError("offset", "must not be negative", offset)
	}

	records, err := s.history.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	total, err := s.history.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count calculations: %w", err)
	}

	if records == nil {
		records = []*domain.CalculationRecord{}
	}
	return &domain.CalculationPage{Records: records, Total: total, Limit: limit, Offset: offset}, nil
}

// GetCacheStats returns result cache statistics
func (s *RiskService) GetCacheStats() CacheStats {
	stats := CacheStats{
		Hits:       s.hits.Load(),
		SharedHits: s.sharedHits.Load(),
		Misses:     s.misses.Load(),
	}
	if s.cache != nil {
		stats.Entries = s.cache.Len()
	}
	return stats
}

// compute looks the inputs up in the in-process cache, then the shared
// cache, and runs the engine on a miss.
func (s *RiskService) compute(ctx context.Context, in prevent.PatientInputs) (cachedCalculation, bool) {
	if s.cache == nil && s.shared == nil {
		return cachedCalculation{Result: prevent.ComputeRisk(in), Validity: prevent.Validate(in)}, false
	}

	key := cacheKey(in)
	if s.cache != nil {
		if calc, ok := s.cache.Get(key); ok {
			s.hits.Add(1)
			return calc, true
		}
	}

	var sharedKey string
	if s.shared != nil {
		sharedKey = hashKey(key)
		if calc, ok := s.getShared(ctx, sharedKey); ok {
			s.sharedHits.Add(1)
			if s.cache != nil {
				s.cache.Add(key, calc)
			}
			return calc, true
		}
	}
	s.misses.Add(1)

	calc := cachedCalculation{Result: prevent.ComputeRisk(in), Validity: prevent.Validate(in)}
	if s.cache != nil {
		s.cache.Add(key, calc)
	}
	if s.shared != nil {
		s.putShared(ctx, sharedKey, calc)
	}
	return calc, false
}

func (s *RiskService) getShared(ctx context.Context, key string) (cachedCalculation, bool) {
	var calc cachedCalculation

	b, err := s.shared.Get(ctx, key)
	if err != nil {
		s.logger.WithError(err).Debug("Shared cache lookup failed")
		return calc, false
	}
	if b == nil {
		return calc, false
	}
	if err := json.Unmarshal(b, &calc); err != nil {
		s.logger.WithError(err).Warn("Discarding undecodable shared cache entry")
		return calc, false
	}
	return calc, true
}

func (s *RiskService) putShared(ctx context.Context, key string, calc cachedCalculation) {
	b, err := json.Marshal(calc)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to encode result for shared cache")
		return
	}
	if err := s.shared.Set(ctx, key, b); err != nil {
		s.logger.WithError(err).Debug("Shared cache store failed")
	}
}

func buildResponse(in prevent.PatientInputs, calc cachedCalculation, cached bool) *domain.RiskResponse {
	resp := &domain.RiskResponse{
		ID:           uuid.NewString(),
		Model:        calc.Result.Model,
		Risk:         calc.Result,
		Notes:        append([]prevent.Issue(nil), calc.Validity.Issues...),
		Cached:       cached,
		CalculatedAt: time.Now().UTC(),
	}

	if calc.Validity.Demographics && in.Age > prevent.MaxThirtyYearAge {
		resp.Notes = append(resp.Notes, prevent.Issue{
			Field:  "age",
			Reason: fmt.Sprintf("30-year scores are only produced up to age %d", prevent.MaxThirtyYearAge),
		})
	}

	for _, e := range prevent.Endpoints {
		for _, h := range prevent.Horizons {
			pct := calc.Result.Score(e, h)
			category := prevent.Interpret(e, h, pct)
			resp.Scores = append(resp.Scores, domain.ScoreSummary{
				Name:        prevent.ScoreName(e, h),
				Endpoint:    e,
				Horizon:     h,
				Percent:     pct,
				Display:     prevent.Round1(pct),
				Category:    category,
				Description: category.Description(),
			})
		}
	}

	return resp
}

// hashKey keeps patient values out of the shared cache key space.
func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// cacheKey renders the inputs canonically; absent optionals are written as "-".
func cacheKey(in prevent.PatientInputs) string {
	var b strings.Builder
	b.WriteString(string(in.Sex))
	for _, v := range []float64{in.Age, in.SBP, in.EGFR} {
		b.WriteByte('|')
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	for _, v := range []bool{in.Diabetes, in.Smoking, in.BPTreatment} {
		b.WriteByte('|')
		b.WriteString(strconv.FormatBool(v))
	}
	for _, p := range []*float64{in.TotalCholesterol, in.HDL, in.BMI, in.UACR, in.HbA1c} {
		b.WriteByte('|')
		if p == nil {
			b.WriteByte('-')
		} else {
			b.WriteString(strconv.FormatFloat(*p, 'g', -1, 64))
		}
	}
	b.WriteByte('|')
	if in.Statin == nil {
		b.WriteByte('-')
	} else {
		b.WriteString(strconv.FormatBool(*in.Statin))
	}
	b.WriteByte('|')
	if in.SDI == nil {
		b.WriteByte('-')
	} else {
		b.WriteString(strconv.Itoa(*in.SDI))
	}
	return b.String()
}
