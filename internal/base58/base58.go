package base58

import (
	"math"
	"math/big"
	"strings"

	mr "github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// Alphabet содержит 58 символов коротких ссылок flic.kr (без 0, O, I, l).
const Alphabet = "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"

var alphabetLen = uint64(len(Alphabet))

// Ошибки кодирования и декодирования.
var (
	ErrNegative      = errors.New("negative number")        // отрицательное число
	ErrEmpty         = errors.New("empty string")           // пустая строка
	ErrInvalidSymbol = errors.New("invalid base58 symbol")  // символ вне алфавита
	ErrOverflow      = errors.New("value overflows uint64") // значение не помещается в uint64
)

// Encode конвертирует число в строку base58, старший разряд первым.
func Encode(n uint64) string {
	letters := []byte{}

	for {
		letters = append(letters, Alphabet[n%alphabetLen])
		n /= alphabetLen

		if n == 0 {
			break
		}
	}

	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}

	return string(letters)
}

// EncodeBig конвертирует число произвольной длины в строку base58.
func EncodeBig(n *big.Int) (string, error) {
	if n.Sign() < 0 {
		return "", ErrNegative
	}

	if n.Sign() == 0 {
		return Alphabet[:1], nil
	}

	return mr.EncodeAlphabet(n.Bytes(), mr.FlickrAlphabet), nil
}

// DecodeBig восстанавливает число из строки base58.
func DecodeBig(s string) (*big.Int, error) {
	const op = "decode base58"

	if s == "" {
		return nil, errors.Wrap(ErrEmpty, op)
	}

	if i := strings.IndexFunc(s, func(r rune) bool { return !strings.ContainsRune(Alphabet, r) }); i >= 0 {
		return nil, errors.Wrapf(ErrInvalidSymbol, "%s: position %d", op, i)
	}

	b, err := mr.DecodeAlphabet(s, mr.FlickrAlphabet)

	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	return new(big.Int).SetBytes(b), nil
}

// Decode восстанавливает число из строки base58.
// Возвращает ErrOverflow, если значение больше math.MaxUint64.
func Decode(s string) (uint64, error) {
	n, err := DecodeBig(s)

	if err != nil {
		return 0, err
	}

	if n.Cmp(new(big.Int).SetUint64(math.MaxUint64)) > 0 {
		return 0, errors.Wrap(ErrOverflow, "decode base58")
	}

	return n.Uint64(), nil
}
