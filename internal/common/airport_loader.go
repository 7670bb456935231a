package common

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"skydesk/aerodrome/internal/db/repositories"
	"skydesk/aerodrome/internal/logging"
	"skydesk/aerodrome/internal/models/dtos"
	gormModels "skydesk/aerodrome/internal/models/gorm"
	"skydesk/aerodrome/internal/services"

	gormlib "gorm.io/gorm"
)

// AirportLoaderService handles bulk loading of airport data from JSON
// documents keyed by ICAO code (the mwgg/Airports format).
type AirportLoaderService struct {
	repo *repositories.AirportRepository
}

// NewAirportLoaderService creates a new airport loader service
func NewAirportLoaderService(db *gormlib.DB) *AirportLoaderService {
	return &AirportLoaderService{
		repo: repositories.NewAirportRepository(db),
	}
}

// LoadFromJSON loads airports from a JSON reader.
// Expected format: an object whose keys are ICAO codes and whose values
// are airport records, e.g. {"KJFK": {"icao": "KJFK", "name": ...}}.
// Every key must match the record's embedded icao field; a mismatch
// rejects the whole document. Records missing an ICAO or a name are
// skipped. Keys already present in the store are left untouched, so
// reloading the same document is idempotent.
func (s *AirportLoaderService) LoadFromJSON(ctx context.Context, reader io.Reader) (*dtos.LoadResult, error) {
	var rawData map[string]dtos.AirportRequest
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&rawData); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	if len(rawData) == 0 {
		return nil, fmt.Errorf("no airport data found in JSON")
	}

	airports := make([]gormModels.Airport, 0, len(rawData))
	skipped := 0
	for key, raw := range rawData {
		icao := strings.ToUpper(strings.TrimSpace(raw.ICAO))
		if icao != strings.ToUpper(strings.TrimSpace(key)) {
			return nil, fmt.Errorf("bulk data key %q does not match embedded ICAO %q", key, raw.ICAO)
		}

		if !services.ValidICAO(icao) {
			skipped++
			continue
		}
		if raw.Name == nil || strings.TrimSpace(*raw.Name) == "" {
			skipped++
			continue
		}

		airports = append(airports, gormModels.Airport{
			ICAO:      icao,
			IATA:      strings.ToUpper(strings.TrimSpace(stringValue(raw.IATA))),
			Name:      strings.TrimSpace(*raw.Name),
			City:      strings.TrimSpace(stringValue(raw.City)),
			State:     strings.TrimSpace(stringValue(raw.State)),
			Country:   strings.TrimSpace(stringValue(raw.Country)),
			Elevation: intValue(raw.Elevation),
			Lat:       floatValue(raw.Lat),
			Lon:       floatValue(raw.Lon),
			Tz:        strings.TrimSpace(stringValue(raw.Tz)),
		})
	}

	if len(airports) == 0 {
		return nil, fmt.Errorf("no valid airports found after parsing")
	}

	if err := s.repo.BatchInsert(ctx, airports); err != nil {
		return nil, err
	}

	logging.Info("Bulk airport load finished",
		"imported", len(airports),
		"skipped", skipped,
	)

	return &dtos.LoadResult{Imported: len(airports), Skipped: skipped}, nil
}

// LoadFromFile loads airports from a JSON file on disk
func (s *AirportLoaderService) LoadFromFile(ctx context.Context, path string) (*dtos.LoadResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open airport data file: %w", err)
	}
	defer file.Close()

	return s.LoadFromJSON(ctx, file)
}

// AutoLoad seeds the store from the given file at startup, but only when
// the store is empty. A missing path disables seeding.
func (s *AirportLoaderService) AutoLoad(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logging.Info("Skipping startup airport load, store not empty", "count", count)
		return nil
	}

	result, err := s.LoadFromFile(ctx, path)
	if err != nil {
		return err
	}
	logging.Info("Seeded airports at startup", "imported", result.Imported)
	return nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intValue(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func floatValue(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
