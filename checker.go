package gqlcheck

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ccbrown/gql-check/graphql"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Checker parses and validates GraphQL documents against a schema. It is safe for concurrent use.
type Checker struct {
	config  *Config
	logger  logrus.FieldLogger
	rules   []graphql.Rule
	metrics *metrics
}

// Result is the outcome of checking a single document.
type Result struct {
	Valid  bool             `json:"valid"`
	Errors []*graphql.Error `json:"errors,omitempty"`
}

func NewChecker(cfg *Config) (*Checker, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	rules := cfg.Rules
	if len(rules) == 0 {
		rules = graphql.SpecifiedRules
	}
	for i, rule := range rules {
		if rule == nil {
			return nil, errors.Errorf("rule %v is nil", i)
		}
	}
	return &Checker{
		config:  cfg,
		logger:  logger,
		rules:   rules,
		metrics: newMetrics(cfg.MetricsRegisterer),
	}, nil
}

// Check parses and validates the query. Diagnostics are reported via the result. The returned
// error is non-nil only if validation failed internally.
func (c *Checker) Check(ctx context.Context, query string) (*Result, error) {
	start := time.Now()
	defer func() {
		c.metrics.checkDuration.Observe(time.Since(start).Seconds())
	}()

	hash := sha256.Sum256([]byte(query))
	logger := c.logger.WithField("query_hash", hex.EncodeToString(hash[:8]))

	if storage := c.config.ResultStorage; storage != nil {
		if b := storage.GetResult(ctx, hash[:]); b != nil {
			if result, err := deserializeResult(b); err != nil {
				logger.WithError(err).Warn("unable to deserialize stored result")
			} else {
				c.metrics.cacheHits.Inc()
				c.record(logger, result, true)
				return result, nil
			}
		}
	}

	result, err := c.check(query)
	if err != nil {
		c.metrics.checks.WithLabelValues(checkResultError).Inc()
		logger.WithError(err).Error("internal validation error")
		return nil, err
	}
	c.record(logger, result, false)

	if storage := c.config.ResultStorage; storage != nil {
		if b, err := serializeResult(result); err != nil {
			logger.WithError(err).Warn("unable to serialize result")
		} else {
			storage.PutResult(ctx, hash[:], b)
		}
	}
	return result, nil
}

func (c *Checker) check(query string) (*Result, error) {
	doc, errs := graphql.Parse(query)
	if len(errs) == 0 {
		var err error
		if errs, err = graphql.Validate(doc, c.config.Schema, c.rules...); err != nil {
			return nil, err
		}
	}
	return &Result{
		Valid:  len(errs) == 0,
		Errors: errs,
	}, nil
}

func (c *Checker) record(logger logrus.FieldLogger, result *Result, cached bool) {
	if result.Valid {
		c.metrics.checks.WithLabelValues(checkResultValid).Inc()
	} else {
		c.metrics.checks.WithLabelValues(checkResultInvalid).Inc()
	}
	c.metrics.diagnostics.Add(float64(len(result.Errors)))
	logger.WithFields(logrus.Fields{
		"diagnostics": len(result.Errors),
		"cached":      cached,
	}).Debug("checked document")
}

// ServeHTTP checks the query of a GraphQL request and responds with the result as JSON. Requests
// may be GET or POST, as with a GraphQL server.
func (c *Checker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, code, err := graphql.NewRequestFromHTTP(r)
	if err != nil {
		http.Error(w, err.Error(), code)
		return
	}

	var result *Result
	if query, queryErr := resolvePersistedQuery(r.Context(), c.config.PersistedQueryStorage, req); queryErr != nil {
		result = &Result{
			Errors: []*graphql.Error{queryErr},
		}
	} else if result, err = c.Check(r.Context(), query); err != nil {
		http.Error(w, "internal validation error", http.StatusInternalServerError)
		return
	}

	body, err := json.Marshal(result)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Write(body)
}
