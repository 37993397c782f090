package keywords

import (
	"context"

	errors "github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"

	"github.com/Laisky/keyword-extractor/library/log"
)

// MissingQuestionMessage describes a request without a question.
const MissingQuestionMessage = `Missing "question" in body`

// NewMissingQuestionError returns the validation error for an empty question.
func NewMissingQuestionError() *Error {
	return NewError(KindValidation, MissingQuestionMessage)
}

// Service extracts keywords using the shared tokenizer.
type Service struct {
	provider *Provider
	logger   logSDK.Logger
}

// NewService wires a Service to its tokenizer provider.
func NewService(provider *Provider, logger logSDK.Logger) (*Service, error) {
	if provider == nil {
		return nil, errors.New("tokenizer provider is required")
	}
	if logger == nil {
		logger = log.Logger.Named("keywords")
	}

	return &Service{provider: provider, logger: logger}, nil
}

// Provider exposes the tokenizer provider, e.g. for readiness checks.
func (s *Service) Provider() *Provider {
	return s.provider
}

// Extract tokenizes question and returns its distinct keywords in order of appearance.
func (s *Service) Extract(ctx context.Context, question string) ([]string, error) {
	if question == "" {
		return nil, NewMissingQuestionError()
	}

	tk, err := s.provider.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get tokenizer")
	}

	tokens, err := tk.Tokenize(ctx, question)
	if err != nil {
		if _, ok := AsError(err); !ok {
			err = WrapError(KindTokenization, err, "tokenize question")
		}
		return nil, errors.WithStack(err)
	}

	keywords := FilterKeywords(tokens)
	s.logger.Debug("extract keywords",
		zap.Int("question_runes", len([]rune(question))),
		zap.Int("tokens", len(tokens)),
		zap.Int("keywords", len(keywords)))

	return keywords, nil
}
