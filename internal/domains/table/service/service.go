package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mime/multipart"

	"tableside/config"
	"tableside/infras/otel"
	"tableside/infras/s3"
	"tableside/internal/domains/table/model"
	"tableside/internal/domains/table/model/dto"
	"tableside/internal/domains/table/repository"
	"tableside/shared"
	"tableside/shared/cache"
	"tableside/shared/constant"
	gDto "tableside/shared/dto"
	"tableside/shared/failure"

	"github.com/rs/zerolog/log"
)

type Table interface {
	Create(ctx context.Context, req dto.CreateTableRequest) (dto.TableResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTablesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, tableID string) (dto.TableResponse, error)
	Update(ctx context.Context, req dto.UpdateTableRequest, tableID string) error
}

type serviceImpl struct {
	repo  repository.Table
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Table, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Table {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

// Create allocates the next table id from the current maximum. Two concurrent creates can
// read the same maximum; the unique constraint rejects the loser with ErrTableIDTaken.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTableRequest) (res dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".table.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	photoURL, err := s.uploadPhoto(ctx, req.PhotoFile, req.Photo)
	if err != nil {
		return res, err
	}

	tables, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, model.FieldTableID)
	if err != nil {
		log.Error().Err(err).Msg("failed to read table ids")
		s.discardPhoto(ctx, photoURL)

		return res, failure.StoreUnavailable
	}

	table := req.ToModel(user, model.NextTableID(tables), photoURL)

	if err = s.repo.Insert(ctx, table); err != nil {
		s.discardPhoto(ctx, photoURL)

		if shared.IsUniqueViolation(err) {
			log.Warn().Int("table_id", table.TableID).Msg("table id allocated concurrently")

			return res, model.ErrTableIDTaken
		}

		log.Error().Err(err).Msg("failed to insert table")

		return res, failure.StoreUnavailable
	}

	res.FromModel(table)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CacheTableGets)
		shared.InvalidateCaches(c, s.cache, constant.CacheTableCount)
		shared.InvalidateCaches(c, s.cache, constant.CacheScheduleGet)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTablesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".table.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(constant.CacheTableGets, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tables")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	tables, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tables")

		return res, failure.StoreUnavailable
	}

	res.FromModels(tables, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tables to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".table.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(constant.CacheTableCount, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tables")

		return total, failure.StoreUnavailable
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save table count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, tableID string) (res dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".table.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err := ParseTableID(tableID)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(constant.CacheTableGet, tableID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	table, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(table)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save table to cache")
		}
	}()

	return res, nil
}

// Update edits name, capacity, location and photo. Existing assignments are not re-checked
// against a lowered capacity.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTableRequest, tableID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".table.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	id, err := ParseTableID(tableID)
	if err != nil {
		return err
	}

	current, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	photoURL, err := s.uploadPhoto(ctx, req.PhotoFile, req.Photo)
	if err != nil {
		return err
	}

	if _, err = s.repo.Update(ctx, req.ToFields(user, photoURL), dto.ByTableID(id)); err != nil {
		log.Error().Err(err).Int("table_id", id).Msg("failed to update table")
		s.discardPhoto(ctx, photoURL)

		return failure.StoreUnavailable
	}

	if photoURL != constant.Empty && current.PhotoURL != constant.Empty {
		s.discardPhoto(ctx, current.PhotoURL)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(constant.CacheTableGet, tableID)); err != nil {
			log.Error().Err(err).Msg("failed to delete table cache")
		}

		shared.InvalidateCaches(c, s.cache, constant.CacheTableGets)
		shared.InvalidateCaches(c, s.cache, constant.CacheTableCount)
		shared.InvalidateCaches(c, s.cache, constant.CacheScheduleGet)
	}()

	return nil
}

func (s *serviceImpl) load(ctx context.Context, tableID int) (model.Table, error) {
	table, err := s.repo.Get(ctx, dto.ByTableID(tableID))
	if err != nil {
		log.Error().Err(err).Int("table_id", tableID).Msg("failed to get table")

		return table, failure.StoreUnavailable
	}

	if table.ID == constant.Empty {
		return table, model.ErrTableNotFound
	}

	return table, nil
}

func (s *serviceImpl) uploadPhoto(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	if header == nil {
		return constant.Empty, nil
	}

	url, err := s.s3.UploadFile(ctx, model.EntityName, file, header)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload table photo")

		return constant.Empty, fmt.Errorf("failed to upload table photo: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) discardPhoto(ctx context.Context, url string) {
	if url == constant.Empty {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.s3.DeleteByURL(c, url); err != nil {
			log.Error().Err(err).Str("url", url).Msg("failed to delete table photo")
		}
	}()
}

// ParseTableID parses the integer table id used in paths.
func ParseTableID(tableID string) (int, error) {
	id, err := shared.ConvertStringToInt(tableID)
	if err != nil || id < 1 {
		return 0, failure.BadRequestFromString("table id must be a positive integer") //nolint:wrapcheck
	}

	return id, nil
}
