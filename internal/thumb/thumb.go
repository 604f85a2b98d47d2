package thumb

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Alias определяет вариант размера миниатюры.
type Alias string

// Известные варианты миниатюр.
const (
	Real         Alias = "real"
	QHD          Alias = "qhd"
	QHDSharpened Alias = "qhd_sharpened"
)

// Aliases перечисляет варианты в порядке опроса.
var Aliases = []Alias{Real, QHD, QHDSharpened}

const defaultRevision = "0"

// Token описывает изображение: идентификатор и ревизию.
type Token struct {
	Raw      string // исходная строка
	ID       string // идентификатор изображения
	Revision string // ревизия, по умолчанию "0"
}

// ParseToken разбирает строку вида id или id/rev.
func ParseToken(s string) Token {
	parts := strings.Split(s, "/")
	token := Token{
		Raw:      s,
		ID:       parts[0],
		Revision: defaultRevision,
	}

	if len(parts) > 1 && parts[1] != "" {
		token.Revision = parts[1]
	}

	return token
}

// ParseTokens разбирает список строк.
func ParseTokens(args []string) []Token {
	tokens := make([]Token, 0, len(args))

	for _, arg := range args {
		tokens = append(tokens, ParseToken(arg))
	}

	return tokens
}

// Ошибки извлечения идентификатора файла.
var (
	ErrNoFilename = errors.New("no filename in url")
	ErrNoFileID   = errors.New("filename has no size suffix")
)

var (
	filenamePattern = regexp.MustCompile(`[^/]+\.[a-z]+$`)
	fileIDPattern   = regexp.MustCompile(`^(.+)_[0-9]+x[0-9]+_`)
)

// ExtractFilename возвращает последний сегмент пути URL с расширением.
func ExtractFilename(url string) (string, error) {
	filename := filenamePattern.FindString(url)

	if filename == "" {
		return "", fmt.Errorf("%w: %q", ErrNoFilename, url)
	}

	return filename, nil
}

// ExtractFileID возвращает часть имени файла перед суффиксом _WIDTHxHEIGHT_.
func ExtractFileID(filename string) (string, error) {
	m := fileIDPattern.FindStringSubmatch(filename)

	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrNoFileID, filename)
	}

	return m[1], nil
}

// FileIDFromURL извлекает идентификатор файла из URL миниатюры.
func FileIDFromURL(url string) (string, error) {
	filename, err := ExtractFilename(url)

	if err != nil {
		return "", err
	}

	return ExtractFileID(filename)
}

// Result описывает итог одной попытки: идентификатор файла или причину пропуска.
type Result struct {
	Token  Token
	Alias  Alias
	FileID string
	Err    error
}

// OK сообщает, удалось ли получить идентификатор.
func (r Result) OK() bool {
	return r.Err == nil
}

// String возвращает строку вывода: <token> <alias> <fileid>.
func (r Result) String() string {
	return fmt.Sprintf("%s %s %s", r.Token.Raw, r.Alias, r.FileID)
}
