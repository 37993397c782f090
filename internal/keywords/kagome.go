package keywords

import (
	"context"
	"fmt"

	errors "github.com/Laisky/errors/v2"
	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// posNone is the IPA dictionary placeholder for an empty feature.
const posNone = "*"

// NewKagomeBuilder returns a Builder backed by the kagome analyzer
// with the IPA dictionary, or the dictionary at settings.DictPath.
func NewKagomeBuilder(settings Settings) Builder {
	return func(ctx context.Context) (Tokenizer, error) {
		d, err := loadDict(settings.DictPath)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		analyzer, err := tokenizer.New(d, tokenizer.OmitBosEos())
		if err != nil {
			return nil, errors.Wrap(err, "new kagome tokenizer")
		}

		return &kagomeTokenizer{analyzer: analyzer}, nil
	}
}

func loadDict(path string) (*dict.Dict, error) {
	if path == "" {
		return ipa.Dict(), nil
	}

	d, err := dict.LoadDictFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load dictionary %q", path)
	}
	return d, nil
}

type kagomeTokenizer struct {
	analyzer *tokenizer.Tokenizer
}

// Tokenize runs the analyzer in normal mode.
func (k *kagomeTokenizer) Tokenize(ctx context.Context, text string) (tokens []Token, err error) {
	if err = ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "tokenize")
	}

	defer func() {
		if r := recover(); r != nil {
			tokens = nil
			err = WrapError(KindTokenization,
				errors.Errorf("analyzer panic: %s", fmt.Sprint(r)), "tokenize")
		}
	}()

	morphs := k.analyzer.Analyze(text, tokenizer.Normal)
	tokens = make([]Token, 0, len(morphs))
	for _, m := range morphs {
		if m.Class == tokenizer.DUMMY {
			continue
		}
		tokens = append(tokens, newToken(m.Surface, m.POS()))
	}

	return tokens, nil
}

func newToken(surface string, pos []string) Token {
	tok := Token{Surface: surface}
	if len(pos) > 0 && pos[0] != posNone {
		tok.POS = pos[0]
	}
	if len(pos) > 1 && pos[1] != posNone {
		tok.POSDetail = pos[1]
	}
	return tok
}
