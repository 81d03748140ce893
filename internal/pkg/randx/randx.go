/*
Package randx provides functions for generating cryptographically secure random identifiers.

It generates UUID entity identifiers and random fallback display handles.
*/
package randx

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

const (
	// Base62Chars defines the character set used for Base62 encoding (0-9, A-Z, a-z).
	Base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// Base62Len is the total number of characters in the Base62 character set (62).
	Base62Len = int64(len(Base62Chars))
)

// base62String generates a random Base62 string of the given length using crypto/rand.
func base62String(length int) (string, error) {
	result := make([]byte, length)

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(Base62Len))
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %v", err)
		}

		result[i] = Base62Chars[num.Int64()]
	}

	return string(result), nil
}

// EntityID generates a standard UUID v4 string used for parties, messages,
// and notifications.
func EntityID() string {
	return uuid.New().String()
}

// Nickname generates a random display name with a "Raver_" prefix, used
// when a viewer skips picking a handle during onboarding.
func Nickname() (string, error) {
	const nicknameRandomLength = 6

	suffix, err := base62String(nicknameRandomLength)
	if err != nil {
		return "", err
	}

	return "Raver_" + suffix, nil
}
