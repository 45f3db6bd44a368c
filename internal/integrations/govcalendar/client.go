package govcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/avdema/TA-ReportingService/internal/domain"
)

const (
	bankHolidaysPath = "/bank-holidays.json"
	cacheKey         = "bank-holidays"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент календаря рабочих дней поверх фида банковских праздников GOV.UK.
// Ответ фида кешируется (праздники публикуются на годы вперед), исходящие
// запросы ограничены token-bucket лимитером.
type Client struct {
	baseURL    string
	division   string
	httpClient *http.Client
	cache      *gocache.Cache
	limiter    *rate.Limiter
	log        Logger
}

// NewClient создает новый экземпляр клиента календаря
func NewClient(baseURL string, division string, timeout, cacheTTL time.Duration, log Logger) *Client {
	if division == "" {
		division = DefaultDivision
	}
	return &Client{
		baseURL:  baseURL,
		division: division,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache:   gocache.New(cacheTTL, cacheTTL),
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
		log:     log,
	}
}

// AddWorkingDays возвращает дату через count рабочих дней после date.
// Детерминирован для фиксированного множества праздников; count >= 0.
func (c *Client) AddWorkingDays(ctx context.Context, date time.Time, count int) (time.Time, error) {
	if count < 0 {
		return time.Time{}, fmt.Errorf("%w: count=%d", ErrNegativeCount, count)
	}
	if count == 0 {
		return domain.DateOf(date), nil
	}

	holidays, err := c.bankHolidays(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return addWorkingDays(date, count, holidays), nil
}

// CountWorkingDays считает рабочие дни в [start, end] включительно.
// При start > end возвращает 0.
func (c *Client) CountWorkingDays(ctx context.Context, start, end time.Time) (int, error) {
	if domain.DateOf(start).After(domain.DateOf(end)) {
		return 0, nil
	}

	holidays, err := c.bankHolidays(ctx)
	if err != nil {
		return 0, err
	}
	return countWorkingDays(start, end, holidays), nil
}

// bankHolidays возвращает множество дат праздников, при необходимости
// загружая фид GOV.UK
func (c *Client) bankHolidays(ctx context.Context) (holidaySet, error) {
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(holidaySet), nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", ErrInternal, err)
	}

	url := c.baseURL + bankHolidaysPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var feed bankHolidayFeed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	division, ok := feed[c.division]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDivision, c.division)
	}

	holidays := make(holidaySet, len(division.Events))
	for _, event := range division.Events {
		day, err := time.Parse(domain.DateFormat, event.Date)
		if err != nil {
			c.log.Warn("govcalendar: skipping malformed holiday date %q (%s)", event.Date, event.Title)
			continue
		}
		holidays[day] = struct{}{}
	}

	c.cache.Set(cacheKey, holidays, gocache.DefaultExpiration)
	c.log.Info("govcalendar: loaded %d bank holidays for division=%s", len(holidays), c.division)

	return holidays, nil
}
