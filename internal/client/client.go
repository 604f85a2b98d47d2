package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nestjam/astrotools/internal/log"
	"github.com/nestjam/astrotools/internal/thumb"
)

// DefaultBaseURL задает адрес AstroBin по умолчанию.
const DefaultBaseURL = "https://www.astrobin.com"

const (
	thumbPath = "/{id}/{rev}/thumb/{alias}/"
	fullPath  = "/full/{id}/{rev}/"
	aliasAttr = "data-alias"
)

// Ошибки ответа сервера.
var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrNoURL            = errors.New("response has no url")
)

// Client представляет клиент публичного API AstroBin.
type Client struct {
	inner   *resty.Client
	baseURL string
	timeout time.Duration
	logger  *zap.Logger
}

// Option определяет опцию настройки клиента.
type Option func(*Client)

// New создает экземпляр клиента с переданными опциями.
func New(options ...Option) *Client {
	client := &Client{
		inner:   resty.New(),
		baseURL: DefaultBaseURL,
		logger:  zap.NewNop(),
	}

	for _, opt := range options {
		opt(client)
	}

	client.inner.
		SetBaseURL(client.baseURL).
		SetTimeout(client.timeout).
		OnAfterResponse(log.ResponseLogger(client.logger))

	return client
}

// WithBaseURL возвращает опцию клиента с указанным адресом сервера.
func WithBaseURL(addr string) Option {
	return func(client *Client) {
		client.baseURL = addr
	}
}

// WithTimeout возвращает опцию клиента с таймаутом запроса. Ноль отключает таймаут.
func WithTimeout(timeout time.Duration) Option {
	return func(client *Client) {
		client.timeout = timeout
	}
}

// WithLogger возвращает опцию клиента с логгером запросов.
func WithLogger(logger *zap.Logger) Option {
	return func(client *Client) {
		client.logger = logger
	}
}

type thumbResponse struct {
	URL string `json:"url"`
}

// ThumbURL возвращает URL миниатюры изображения для варианта alias.
func (c *Client) ThumbURL(ctx context.Context, token thumb.Token, alias thumb.Alias) (string, error) {
	const op = "get thumb url"
	response, err := c.request(ctx, token).
		SetPathParam("alias", string(alias)).
		Get(thumbPath)

	if err != nil {
		return "", errors.Wrap(err, op)
	}

	if response.IsError() {
		return "", fmt.Errorf("%s: %w %d", op, ErrUnexpectedStatus, response.StatusCode())
	}

	var data thumbResponse
	if err := json.Unmarshal(response.Body(), &data); err != nil {
		return "", errors.Wrap(err, op)
	}

	if data.URL == "" {
		return "", fmt.Errorf("%s: %w", op, ErrNoURL)
	}

	return data.URL, nil
}

// PageAliases возвращает варианты миниатюр, перечисленные на странице изображения,
// в порядке появления и без повторов.
func (c *Client) PageAliases(ctx context.Context, token thumb.Token) ([]string, error) {
	const op = "get page aliases"
	response, err := c.request(ctx, token).Get(fullPath)

	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	if response.IsError() {
		return nil, fmt.Errorf("%s: %w %d", op, ErrUnexpectedStatus, response.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(response.Body()))

	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	aliases := []string{}
	seen := map[string]bool{}
	doc.Find("[" + aliasAttr + "]").Each(func(_ int, s *goquery.Selection) {
		alias, _ := s.Attr(aliasAttr)

		if alias == "" || seen[alias] {
			return
		}

		seen[alias] = true
		aliases = append(aliases, alias)
	})

	return aliases, nil
}

func (c *Client) request(ctx context.Context, token thumb.Token) *resty.Request {
	return c.inner.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"id":  token.ID,
			"rev": token.Revision,
		})
}
