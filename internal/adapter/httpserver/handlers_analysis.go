package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/reviewsense/internal/domain"
	apperrors "github.com/pscheid92/reviewsense/internal/platform/errors"
	"github.com/pscheid92/reviewsense/internal/sentiment"
)

const (
	defaultPhoneModel = "General"
	iphoneModel       = "iPhone 15"
	samsungModel      = "Galaxy S24"

	textTooShortMessage = "Text must be at least 3 characters"
)

type analyzeRequest struct {
	Text       string `json:"text"`
	PhoneModel string `json:"phone_model"`
}

type analyzeResponse struct {
	Sentiment     domain.Label        `json:"sentiment"`
	Confidence    float64             `json:"confidence"`
	CleanedText   string              `json:"cleaned_text"`
	Probabilities domain.Distribution `json:"probabilities"`
}

type compareRequest struct {
	IPhoneReview  string `json:"iphone_review"`
	SamsungReview string `json:"samsung_review"`
}

type compareLeg struct {
	Sentiment     domain.Label        `json:"sentiment"`
	Confidence    float64             `json:"confidence"`
	Probabilities domain.Distribution `json:"probabilities"`
}

type compareResponse struct {
	IPhone  compareLeg `json:"iphone"`
	Samsung compareLeg `json:"samsung"`
}

type sampleReviews struct {
	IPhone  []string `json:"iphone"`
	Samsung []string `json:"samsung"`
}

var demoReviews = sampleReviews{
	IPhone: []string{
		"The iPhone 15 camera is absolutely stunning! Best photos I've ever taken.",
		"Battery life on my iPhone 15 is disappointing. Barely lasts a full day.",
		"It's okay, nothing special about the iPhone 15 compared to iPhone 14.",
	},
	Samsung: []string{
		"Galaxy S24 display is incredible! The colors are so vibrant and smooth.",
		"Overpriced for what you get. Samsung S24 is not worth the money.",
		"The S24 is decent. Does what I need but nothing groundbreaking.",
	},
}

func (s *Server) registerAnalysisRoutes() {
	post := s.postMiddleware()
	s.echo.POST("/analyze", s.handleAnalyze, post...)
	s.echo.POST("/compare", s.handleCompare, post...)
	s.echo.GET("/sample-reviews", s.handleSampleReviews)
}

func (s *Server) handleAnalyze(c echo.Context) error {
	ctx := c.Request().Context()

	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(err)
	}
	if req.PhoneModel == "" {
		req.PhoneModel = defaultPhoneModel
	}

	res, err := s.analyzer.Analyze(ctx, req.Text)
	if err != nil {
		return analysisError(err, "text")
	}

	slog.DebugContext(ctx, "Review analyzed", "phone_model", req.PhoneModel, "sentiment", res.Label, "scorer", res.Scorer)

	response := analyzeResponse{
		Sentiment:     res.Label,
		Confidence:    res.Confidence,
		CleanedText:   res.NormalizedText,
		Probabilities: res.Distribution,
	}
	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleCompare(c echo.Context) error {
	ctx := c.Request().Context()

	var req compareRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(err)
	}

	cmp, err := s.analyzer.Compare(ctx, req.IPhoneReview, req.SamsungReview)
	if err != nil {
		field := "iphone_review"
		if invalid, ok := errors.AsType[*sentiment.InvalidInputError](err); ok && invalid.Field == "second" {
			field = "samsung_review"
		}
		return analysisError(err, field)
	}

	slog.DebugContext(ctx, "Reviews compared",
		"phone_models", []string{iphoneModel, samsungModel},
		"iphone", cmp.First.Label,
		"samsung", cmp.Second.Label,
	)

	response := compareResponse{
		IPhone:  toCompareLeg(cmp.First),
		Samsung: toCompareLeg(cmp.Second),
	}
	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleSampleReviews(c echo.Context) error {
	if err := c.JSON(http.StatusOK, demoReviews); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func toCompareLeg(r domain.Result) compareLeg {
	return compareLeg{
		Sentiment:     r.Label,
		Confidence:    r.Confidence,
		Probabilities: r.Distribution,
	}
}

func invalidBody(err error) *apperrors.Error {
	appErr := apperrors.ValidationError("invalid request body")
	appErr.Cause = err
	return appErr
}

func analysisError(err error, field string) *apperrors.Error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return apperrors.ValidationError(textTooShortMessage).WithField("field", field)
	}
	return apperrors.InternalError("failed to analyze review", err)
}
