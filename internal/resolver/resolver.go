package resolver

import (
	"context"

	"github.com/Jeffail/tunny"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nestjam/astrotools/internal/thumb"
)

// ThumbFetcher определяет получение URL миниатюры.
type ThumbFetcher interface {
	ThumbURL(ctx context.Context, token thumb.Token, alias thumb.Alias) (string, error)
}

// Resolver определяет идентификаторы файлов миниатюр для списка изображений.
type Resolver struct {
	fetcher ThumbFetcher
	logger  *zap.Logger
	aliases []thumb.Alias
	workers int
}

// Option определяет опцию настройки Resolver.
type Option func(*Resolver)

// New создает экземпляр Resolver.
func New(fetcher ThumbFetcher, logger *zap.Logger, options ...Option) *Resolver {
	r := &Resolver{
		fetcher: fetcher,
		logger:  logger,
		aliases: thumb.Aliases,
		workers: 1,
	}

	for _, opt := range options {
		opt(r)
	}

	return r
}

// WithWorkers возвращает опцию с числом одновременных запросов.
// При n <= 1 запросы выполняются строго последовательно.
func WithWorkers(n int) Option {
	return func(r *Resolver) {
		r.workers = n
	}
}

type job struct {
	token thumb.Token
	alias thumb.Alias
}

// Resolve опрашивает все варианты миниатюр для каждого изображения и передает
// результат каждой попытки в emit в порядке: изображения, затем варианты.
// Неудачная попытка не прерывает обработку. Возвращает ошибку только при отмене ctx.
func (r *Resolver) Resolve(ctx context.Context, tokens []thumb.Token, emit func(thumb.Result)) error {
	jobs := make([]job, 0, len(tokens)*len(r.aliases))

	for _, token := range tokens {
		for _, alias := range r.aliases {
			jobs = append(jobs, job{token: token, alias: alias})
		}
	}

	if r.workers <= 1 {
		return r.resolveSequential(ctx, jobs, emit)
	}

	return r.resolvePooled(ctx, jobs, emit)
}

func (r *Resolver) resolveSequential(ctx context.Context, jobs []job, emit func(thumb.Result)) error {
	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.report(r.attempt(ctx, j), emit)
	}

	return nil
}

func (r *Resolver) resolvePooled(ctx context.Context, jobs []job, emit func(thumb.Result)) error {
	pool := tunny.NewFunc(r.workers, func(payload interface{}) interface{} {
		return r.attempt(ctx, payload.(job))
	})
	defer pool.Close()

	results := make([]chan thumb.Result, len(jobs))
	for i := range results {
		results[i] = make(chan thumb.Result, 1)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			res, err := pool.ProcessCtx(gctx, j)

			if err != nil {
				return err
			}

			results[i] <- res.(thumb.Result)
			return nil
		})
	}

emitLoop:
	for i := range results {
		select {
		case res := <-results[i]:
			r.report(res, emit)
		case <-gctx.Done():
			break emitLoop
		}
	}

	err := g.Wait()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	return err
}

func (r *Resolver) attempt(ctx context.Context, j job) thumb.Result {
	res := thumb.Result{Token: j.token, Alias: j.alias}
	url, err := r.fetcher.ThumbURL(ctx, j.token, j.alias)

	if err != nil {
		res.Err = err
		return res
	}

	res.FileID, res.Err = thumb.FileIDFromURL(url)
	return res
}

func (r *Resolver) report(res thumb.Result, emit func(thumb.Result)) {
	if !res.OK() {
		r.logger.Debug("thumbnail skipped",
			zap.String("token", res.Token.Raw),
			zap.String("alias", string(res.Alias)),
			zap.Error(res.Err),
		)
	}

	emit(res)
}
