package build_usage_report

import (
	"context"
	"fmt"
	"sync"

	"github.com/avdema/TA-ReportingService/internal/domain"
)

// DefaultWorkers размер пула обработки койко-мест по умолчанию
const DefaultWorkers = 4

// UseCase use case построения отчета об использовании койко-мест
type UseCase struct {
	bookingRepo BookingRepository
	voidRepo    VoidRepository
	calendar    CalendarService
	resolver    StatusResolver
	workers     int
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	voidRepo VoidRepository,
	calendar CalendarService,
	workers int,
	logger Logger,
) *UseCase {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &UseCase{
		bookingRepo: bookingRepo,
		voidRepo:    voidRepo,
		calendar:    calendar,
		resolver:    DomainStatusResolver{},
		workers:     workers,
		logger:      logger,
	}
}

// Execute выполняет use case построения отчета об использовании.
// Койко-места обрабатываются независимо (пул воркеров), результат
// склеивается в порядке входного списка. Первая же ошибка коллаборатора
// прерывает весь отчет - частичных отчетов не бывает
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BuildUsageReport: window=%s..%s, region=%v, bedspaces=%d",
		req.Window.StartDate.Format(domain.DateFormat),
		req.Window.EndDate.Format(domain.DateFormat),
		regionLabel(req.Region), len(req.Bedspaces))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BuildUsageReport: validation failed: %v", err)
		return nil, err
	}

	// 2. Фильтрация по региону (порядок сохраняется)
	bedspaces := filterByRegion(req.Bedspaces, req.Region)

	// 3. Обрабатываем койко-места параллельно, результат каждого кладем
	// в свой слот, чтобы сохранить входной порядок
	results := make([][]Row, len(bedspaces))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	sem := make(chan struct{}, uc.workers)

	for i, bedspace := range bedspaces {
		wg.Add(1)
		go func(i int, bedspace *domain.Bedspace) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			rows, err := uc.bedspaceRows(ctx, bedspace, req.Window)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			results[i] = rows
		}(i, bedspace)
	}

	wg.Wait()

	if firstErr != nil {
		uc.logger.Error("BuildUsageReport: aborted: %v", firstErr)
		return nil, firstErr
	}

	// 4. Склеиваем в порядке входного списка
	rows := make([]Row, 0)
	for _, bedspaceRows := range results {
		rows = append(rows, bedspaceRows...)
	}

	uc.logger.Info("BuildUsageReport: built %d rows for %d bedspaces", len(rows), len(bedspaces))

	return &Response{Window: req.Window, Rows: rows}, nil
}

// bedspaceRows загружает записи одного койко-места и строит его строки
func (uc *UseCase) bedspaceRows(ctx context.Context, bedspace *domain.Bedspace, window domain.ReportingWindow) ([]Row, error) {
	bookings, err := uc.bookingRepo.FindOverlapping(ctx, bedspace.ID, window)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load bookings for bedspace %s: %v", ErrInternal, bedspace.ID, err)
	}

	voids, err := uc.voidRepo.FindOverlapping(ctx, bedspace.ID, window)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load voids for bedspace %s: %v", ErrInternal, bedspace.ID, err)
	}

	if err := validateRecords(bookings, voids); err != nil {
		return nil, err
	}

	return buildBedspaceRows(ctx, bedspace, window, bookings, voids, uc.calendar, uc.resolver)
}

// filterByRegion исключает койко-места, регион которых задан и не совпадает
// с фильтром
func filterByRegion(bedspaces []*domain.Bedspace, region *string) []*domain.Bedspace {
	if region == nil {
		return bedspaces
	}

	filtered := make([]*domain.Bedspace, 0, len(bedspaces))
	for _, bedspace := range bedspaces {
		if bedspace.MatchesRegion(region) {
			filtered = append(filtered, bedspace)
		}
	}
	return filtered
}

func regionLabel(region *string) string {
	if region == nil {
		return "all"
	}
	return *region
}
