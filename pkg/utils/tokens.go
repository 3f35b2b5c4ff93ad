package utils

import (
	"github.com/pkoukk/tiktoken-go"
)

// NumTokens approximates the token count of text. Llama tokenizers differ from
// cl100k, so treat the number as an estimate for logging only.
func NumTokens(text string) (int, error) {
	tkm, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return 0, err
	}

	return len(tkm.Encode(text, nil, nil)), nil
}
