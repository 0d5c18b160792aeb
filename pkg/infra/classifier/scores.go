package classifier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NeuralTrust/toxicity-api/pkg/domain"
	"github.com/NeuralTrust/toxicity-api/pkg/domain/toxicity"
	"github.com/valyala/fastjson"
)

var parserPool fastjson.ParserPool

// ParseScores decodes a flat {"category": score} object. Scores are coerced to float: numbers
// as-is, numeric strings parsed, booleans as 1 or 0. Entries that cannot be coerced are dropped,
// except for the toxicity category whose value drives the verdict.
func ParseScores(data []byte) (toxicity.Scores, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidClassifierOutput, err)
	}
	obj, err := v.Object()
	if err != nil {
		return nil, fmt.Errorf("%w: expected an object of category scores, got %s", domain.ErrInvalidClassifierOutput, v.Type())
	}

	scores := make(toxicity.Scores, obj.Len())
	var scoreErr error
	obj.Visit(func(key []byte, val *fastjson.Value) {
		category := string(key)
		score, ok := coerceScore(val)
		if !ok {
			if category == toxicity.Category && scoreErr == nil {
				scoreErr = domain.NewScoreError(category, val.String())
			}
			return
		}
		scores[category] = score
	})
	if scoreErr != nil {
		return nil, scoreErr
	}

	return scores, nil
}

func coerceScore(v *fastjson.Value) (float64, bool) {
	switch v.Type() {
	case fastjson.TypeNumber:
		f, err := v.Float64()
		return f, err == nil
	case fastjson.TypeString:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(v.GetStringBytes())), 64)
		return f, err == nil
	case fastjson.TypeTrue:
		return 1, true
	case fastjson.TypeFalse:
		return 0, true
	default:
		return 0, false
	}
}
