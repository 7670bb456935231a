package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"skydesk/aerodrome/internal/constants"
	"skydesk/aerodrome/internal/models/dtos"
	gormModels "skydesk/aerodrome/internal/models/gorm"
)

// AirportStore is the record-store capability the service needs. The
// duplicate-ICAO and delete pre-checks rely on the store's own atomicity
// for check-and-act; without it a benign race window exists between the
// existence check and the mutating call.
type AirportStore interface {
	FindByICAO(ctx context.Context, icao string) (*gormModels.Airport, error)
	ExistsByICAO(ctx context.Context, icao string) (bool, error)
	Create(ctx context.Context, airport *gormModels.Airport) error
	DeleteByICAO(ctx context.Context, icao string) error
	FindAll(ctx context.Context, sortBy string) ([]gormModels.Airport, error)
	FindPage(ctx context.Context, page, size int, sortBy string) ([]gormModels.Airport, int64, error)
	FindByNameContains(ctx context.Context, name string) ([]gormModels.Airport, error)
}

// AirportService is the sole entry point for airport business rules. It
// composes field validation with the injected store; the store is the
// only shared mutable state, so the service itself is stateless between
// calls.
type AirportService struct {
	repo AirportStore
}

// NewAirportService creates a new airport service
func NewAirportService(repo AirportStore) *AirportService {
	return &AirportService{repo: repo}
}

// GetPage returns one page of the sorted listing. Pages are zero-based;
// a page past the end yields an empty page, not an error. Any store
// column is accepted as sortBy, unlike GetAll.
func (s *AirportService) GetPage(ctx context.Context, page, size int, sortBy string) (*dtos.AirportPage, error) {
	if page < 0 || size < 0 {
		return nil, newValidationError("Page and size must be non-negative.")
	}
	airports, total, err := s.repo.FindPage(ctx, page, size, sortBy)
	if err != nil {
		return nil, err
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return &dtos.AirportPage{
		PageIndex:  page,
		PageSize:   size,
		TotalPages: totalPages,
		TotalCount: total,
		Content:    dtos.NewAirportViews(airports),
	}, nil
}

// GetAll returns every record. With an empty sortBy the store-native order
// is kept; otherwise sortBy must be one of the allow-listed fields.
func (s *AirportService) GetAll(ctx context.Context, sortBy string) ([]gormModels.Airport, error) {
	if sortBy == "" {
		return s.repo.FindAll(ctx, "")
	}

	allowed := false
	for _, field := range constants.SortableFields {
		if sortBy == field {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, newValidationError(fmt.Sprintf(
			"Sorting by '%s' is not allowed. Allowed fields: %s.",
			sortBy, strings.Join(constants.SortableFields, ", ")))
	}

	return s.repo.FindAll(ctx, sortBy)
}

// FilterByName returns records whose name contains the given substring,
// case-insensitively. An empty substring matches everything.
func (s *AirportService) FilterByName(ctx context.Context, name string) ([]gormModels.Airport, error) {
	return s.repo.FindByNameContains(ctx, name)
}

// GetByICAO looks a record up by key. Absence is (nil, nil), not an
// error; the HTTP surface turns that into a not-found response.
func (s *AirportService) GetByICAO(ctx context.Context, icao string) (*gormModels.Airport, error) {
	return s.repo.FindByICAO(ctx, icao)
}

// AddAirport validates and persists a candidate record. Check order is
// fixed: ICAO format first (fails without touching the store), then
// uniqueness, then the remaining fields, so a duplicate key always wins
// over other field errors.
func (s *AirportService) AddAirport(ctx context.Context, req dtos.AirportRequest) (*gormModels.Airport, error) {
	if !ValidICAO(req.ICAO) {
		return nil, newValidationError(constants.MsgInvalidICAO)
	}

	exists, err := s.repo.ExistsByICAO(ctx, req.ICAO)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, newValidationError(fmt.Sprintf("Airport with ICAO code '%s' already exists.", req.ICAO))
	}

	airport, err := ValidateAirport(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, airport); err != nil {
		return nil, err
	}
	return airport, nil
}

// DeleteAirport removes the record with the given key. Deleting an absent
// key is a caller error, not a no-op. The existence check and the delete
// are not atomic against a concurrent delete of the same key; either
// caller may see the not-found error in that race.
func (s *AirportService) DeleteAirport(ctx context.Context, icao string) error {
	exists, err := s.repo.ExistsByICAO(ctx, icao)
	if err != nil {
		return err
	}
	if !exists {
		return newValidationError("No Data found associated with given ICAO: " + icao)
	}
	return s.repo.DeleteByICAO(ctx, icao)
}

// GetAverageElevationPerCountry scans all records and computes the mean
// elevation per country, skipping records with a blank country.
func (s *AirportService) GetAverageElevationPerCountry(ctx context.Context) (map[string]float64, error) {
	airports, err := s.repo.FindAll(ctx, "")
	if err != nil {
		return nil, err
	}

	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, a := range airports {
		if a.Country == "" {
			continue
		}
		sums[a.Country] += a.Elevation
		counts[a.Country]++
	}

	averages := make(map[string]float64, len(sums))
	for country, sum := range sums {
		averages[country] = float64(sum) / float64(counts[country])
	}
	return averages, nil
}

// GetAirportsWithoutIataCode returns every record whose IATA code is
// blank or whitespace-only.
func (s *AirportService) GetAirportsWithoutIataCode(ctx context.Context) ([]gormModels.Airport, error) {
	airports, err := s.repo.FindAll(ctx, "")
	if err != nil {
		return nil, err
	}

	missing := make([]gormModels.Airport, 0)
	for _, a := range airports {
		if strings.TrimSpace(a.IATA) == "" {
			missing = append(missing, a)
		}
	}
	return missing, nil
}

// GetTop10TimeZones counts occurrences of each non-blank timezone and
// returns the ten most common, descending by count. Equal counts are
// broken by ascending timezone name so the report is reproducible.
func (s *AirportService) GetTop10TimeZones(ctx context.Context) ([]dtos.TimezoneCount, error) {
	airports, err := s.repo.FindAll(ctx, "")
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, a := range airports {
		if strings.TrimSpace(a.Tz) == "" {
			continue
		}
		counts[a.Tz]++
	}

	entries := make([]dtos.TimezoneCount, 0, len(counts))
	for tz, count := range counts {
		entries = append(entries, dtos.TimezoneCount{Tz: tz, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Tz < entries[j].Tz
	})

	if len(entries) > 10 {
		entries = entries[:10]
	}
	return entries, nil
}
