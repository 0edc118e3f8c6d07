package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"readum/internal/config"
	"readum/internal/domain"
	"readum/internal/dto"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator checks request bodies before anything is sent to the quiz backend.
type Validator struct {
	validate *govalidator.Validate
	trans    ut.Translator
}

// NewValidator creates a new validator instance reporting field names by their json tag.
func NewValidator() *Validator {
	v := govalidator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	return &Validator{validate: v, trans: trans}
}

// Struct validates s against its validate tags.
func (v *Validator) Struct(s interface{}) domain.ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs govalidator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{{
			Field:   "body",
			Code:    domain.CodeValidation,
			Message: err.Error(),
		}}
	}

	var errs domain.ValidationErrors
	for _, fe := range fieldErrs {
		code := domain.CodeInvalidFormat
		if fe.Tag() == "required" {
			code = domain.CodeMissingField
		}
		errs = append(errs, domain.ValidationError{
			Field:   fe.Field(),
			Code:    code,
			Message: fe.Translate(v.trans),
			Value:   fe.Value(),
		})
	}
	return errs
}

// QuizRequestBuilder turns raw creation input into a domain.QuizRequest.
// It has no side effects.
type QuizRequestBuilder struct {
	validator   *Validator
	minCount    int
	maxCount    int
	urlDisabled bool
}

// NewQuizRequestBuilder creates a builder for the configured question count
// interval. A lower bound below one is refused so an empty quiz can never be requested.
func NewQuizRequestBuilder(v *Validator, cfg config.QuizConfig) (*QuizRequestBuilder, error) {
	if cfg.MinQuestionCount < 1 {
		return nil, fmt.Errorf("minimum question count must be at least 1, got %d", cfg.MinQuestionCount)
	}
	if cfg.MinQuestionCount > cfg.MaxQuestionCount {
		return nil, fmt.Errorf("minimum question count %d exceeds maximum %d", cfg.MinQuestionCount, cfg.MaxQuestionCount)
	}
	if v == nil {
		v = NewValidator()
	}
	return &QuizRequestBuilder{
		validator:   v,
		minCount:    cfg.MinQuestionCount,
		maxCount:    cfg.MaxQuestionCount,
		urlDisabled: cfg.DisableURLInput,
	}, nil
}

// Bounds returns the closed question count interval.
func (b *QuizRequestBuilder) Bounds() (int, int) {
	return b.minCount, b.maxCount
}

// URLInputEnabled reports whether url type requests are accepted.
func (b *QuizRequestBuilder) URLInputEnabled() bool {
	return !b.urlDisabled
}

// Build validates raw and returns the request to send, or domain.ValidationErrors.
func (b *QuizRequestBuilder) Build(raw dto.CreateQuizRequest) (*domain.QuizRequest, error) {
	errs := b.validator.Struct(raw)

	content := strings.TrimSpace(raw.Content)
	if raw.Content != "" && content == "" {
		errs = append(errs, domain.NewMissingFieldError("content"))
	}

	if domain.QuizType(raw.Type) == domain.QuizTypeURL {
		if b.urlDisabled {
			errs = append(errs, domain.NewURLInputDisabledError("type"))
		} else if content != "" && !IsHTTPURL(content) {
			errs = append(errs, domain.NewInvalidURLError("content", content))
		}
	}

	if raw.QuestionCount < b.minCount || raw.QuestionCount > b.maxCount {
		errs = append(errs, domain.NewInvalidQuestionCountError("questionCount", raw.QuestionCount, b.minCount, b.maxCount))
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &domain.QuizRequest{
		Type:          domain.QuizType(raw.Type),
		Content:       content,
		Difficulty:    domain.Difficulty(raw.Difficulty),
		QuestionCount: raw.QuestionCount,
	}, nil
}

// IsHTTPURL reports whether s is an absolute URL with a host whose scheme starts with http.
func IsHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return false
	}
	return strings.HasPrefix(strings.ToLower(u.Scheme), "http")
}
