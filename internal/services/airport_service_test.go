package services

import (
	"context"
	"fmt"
	"testing"

	"skydesk/aerodrome/internal/db/repositories"
	"skydesk/aerodrome/internal/models/dtos"
	gormModels "skydesk/aerodrome/internal/models/gorm"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&gormModels.Airport{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func newTestService(t *testing.T) (*AirportService, *gorm.DB) {
	db := setupTestDB(t)
	return NewAirportService(repositories.NewAirportRepository(db)), db
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func validRequest(icao string) dtos.AirportRequest {
	return dtos.AirportRequest{
		ICAO:      icao,
		Name:      strPtr("John F Kennedy International"),
		Country:   strPtr("US"),
		Tz:        strPtr("America/New_York"),
		Elevation: intPtr(13),
		Lat:       floatPtr(40.6398),
		Lon:       floatPtr(-73.7789),
	}
}

func TestAddAirport_ValidDefaultsAndRoundTrip(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.AddAirport(ctx, validRequest("KJFK"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if created.IATA != "" || created.City != "" || created.State != "" {
		t.Errorf("Expected empty-string defaults, got iata=%q city=%q state=%q",
			created.IATA, created.City, created.State)
	}

	fetched, err := service.GetByICAO(ctx, "KJFK")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if fetched == nil {
		t.Fatal("Expected airport after add")
	}
	if *fetched != *created {
		t.Errorf("Round-trip mismatch: %+v vs %+v", *fetched, *created)
	}
}

func TestAddAirport_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dtos.AirportRequest)
		wantMsg string
	}{
		{
			name:    "missing icao reported before other failures",
			mutate:  func(r *dtos.AirportRequest) { r.ICAO = ""; r.Name = nil; r.Country = nil },
			wantMsg: "ICAO code is a mandatory field, which should not contain special or lowercase characters and must be exactly 4 characters.",
		},
		{
			name:    "lowercase icao",
			mutate:  func(r *dtos.AirportRequest) { r.ICAO = "kjfk" },
			wantMsg: "ICAO code is a mandatory field, which should not contain special or lowercase characters and must be exactly 4 characters.",
		},
		{
			name:    "three character icao",
			mutate:  func(r *dtos.AirportRequest) { r.ICAO = "ABC" },
			wantMsg: "ICAO code is a mandatory field, which should not contain special or lowercase characters and must be exactly 4 characters.",
		},
		{
			name:    "missing name reported before bad country",
			mutate:  func(r *dtos.AirportRequest) { r.Name = nil; r.Country = strPtr("USA") },
			wantMsg: "Name is a mandatory field and cannot be empty.",
		},
		{
			name:    "blank name",
			mutate:  func(r *dtos.AirportRequest) { r.Name = strPtr("   ") },
			wantMsg: "Name is a mandatory field and cannot be empty.",
		},
		{
			name:    "three letter country",
			mutate:  func(r *dtos.AirportRequest) { r.Country = strPtr("USA") },
			wantMsg: "Country code is a mandatory field and must be two uppercase letters.",
		},
		{
			name:    "lowercase country",
			mutate:  func(r *dtos.AirportRequest) { r.Country = strPtr("us") },
			wantMsg: "Country code is a mandatory field and must be two uppercase letters.",
		},
		{
			name:    "missing timezone",
			mutate:  func(r *dtos.AirportRequest) { r.Tz = nil },
			wantMsg: "Timezone is a mandatory field and cannot be empty.",
		},
		{
			name:    "missing elevation",
			mutate:  func(r *dtos.AirportRequest) { r.Elevation = nil },
			wantMsg: "Elevation is a mandatory field and must be an integer.",
		},
		{
			name:    "missing latitude",
			mutate:  func(r *dtos.AirportRequest) { r.Lat = nil },
			wantMsg: "Latitude is a mandatory field and must be in the range [-90, +90] degrees.",
		},
		{
			name:    "latitude out of range",
			mutate:  func(r *dtos.AirportRequest) { r.Lat = floatPtr(91.0) },
			wantMsg: "Latitude is a mandatory field and must be in the range [-90, +90] degrees.",
		},
		{
			name:    "longitude out of range",
			mutate:  func(r *dtos.AirportRequest) { r.Lon = floatPtr(181.0) },
			wantMsg: "Longitude is a mandatory field and must be in the range [-180, +180] degrees.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, db := newTestService(t)
			ctx := context.Background()

			req := validRequest("KLAX")
			tt.mutate(&req)

			_, err := service.AddAirport(ctx, req)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Expected %q, got %q", tt.wantMsg, err.Error())
			}

			// The store must be untouched on rejection
			var count int64
			db.Model(&gormModels.Airport{}).Count(&count)
			if count != 0 {
				t.Errorf("Expected empty store after rejection, got %d records", count)
			}
		})
	}
}

func TestAddAirport_RejectionIsIdempotent(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	req := validRequest("KLAX")
	req.Lat = floatPtr(91.0)

	_, err1 := service.AddAirport(ctx, req)
	_, err2 := service.AddAirport(ctx, req)
	if err1 == nil || err2 == nil {
		t.Fatal("Expected validation errors")
	}
	if err1.Error() != err2.Error() {
		t.Errorf("Expected identical errors, got %q and %q", err1.Error(), err2.Error())
	}
}

func TestAddAirport_DuplicateICAO(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	if _, err := service.AddAirport(ctx, validRequest("KJFK")); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// The duplicate wins over any other field error
	dup := validRequest("KJFK")
	dup.Name = nil

	_, err := service.AddAirport(ctx, dup)
	if err == nil {
		t.Fatal("Expected duplicate error")
	}
	want := "Airport with ICAO code 'KJFK' already exists."
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}

func TestGetByICAO_AbsentIsNilNotError(t *testing.T) {
	service, _ := newTestService(t)

	airport, err := service.GetByICAO(context.Background(), "XXXX")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if airport != nil {
		t.Errorf("Expected nil for absent key, got %+v", airport)
	}
}

func TestDeleteAirport(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	if _, err := service.AddAirport(ctx, validRequest("KJFK")); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := service.DeleteAirport(ctx, "KJFK"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	airport, err := service.GetByICAO(ctx, "KJFK")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if airport != nil {
		t.Error("Expected deleted key to be absent")
	}

	err = service.DeleteAirport(ctx, "KJFK")
	if err == nil {
		t.Fatal("Expected error for absent key")
	}
	want := "No Data found associated with given ICAO: KJFK"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}

func TestGetAll_SortAllowList(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	db.Create(&gormModels.Airport{ICAO: "KJFK", Name: "Kennedy", Country: "US", Tz: "America/New_York"})
	db.Create(&gormModels.Airport{ICAO: "EGLL", Name: "Heathrow", Country: "GB", Tz: "Europe/London"})

	_, err := service.GetAll(ctx, "invalidField")
	if err == nil {
		t.Fatal("Expected error for disallowed sort field")
	}
	want := "Sorting by 'invalidField' is not allowed. Allowed fields: name, city, state, country."
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}

	// icao is a real column but not allow-listed here
	if _, err := service.GetAll(ctx, "icao"); err == nil {
		t.Error("Expected error for non-allow-listed column")
	}

	sorted, err := service.GetAll(ctx, "name")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(sorted) != 2 || sorted[0].Name != "Heathrow" || sorted[1].Name != "Kennedy" {
		t.Errorf("Expected name-sorted result, got %+v", sorted)
	}

	all, err := service.GetAll(ctx, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 records, got %d", len(all))
	}
}

func TestFilterByName(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	db.Create(&gormModels.Airport{ICAO: "KJFK", Name: "John F Kennedy International", Country: "US"})
	db.Create(&gormModels.Airport{ICAO: "EGLL", Name: "Heathrow Airport", Country: "GB"})

	matches, err := service.FilterByName(ctx, "kennedy")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(matches) != 1 || matches[0].ICAO != "KJFK" {
		t.Errorf("Expected KJFK only, got %+v", matches)
	}

	none, err := service.FilterByName(ctx, "Narita")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no matches, got %+v", none)
	}

	// An empty substring matches everything
	all, err := service.FilterByName(ctx, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 matches, got %d", len(all))
	}
}

func TestGetPage(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		db.Create(&gormModels.Airport{
			ICAO: fmt.Sprintf("KA0%d", i),
			Name: fmt.Sprintf("Airport %d", i),
		})
	}

	page, err := service.GetPage(ctx, 0, 2, "name")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(page.Content) != 2 {
		t.Errorf("Expected 2 records, got %d", len(page.Content))
	}
	if page.TotalCount != 5 || page.TotalPages != 3 {
		t.Errorf("Expected total 5 over 3 pages, got %d over %d", page.TotalCount, page.TotalPages)
	}
	if page.Content[0].Name != "Airport 0" {
		t.Errorf("Expected sorted first page, got %+v", page.Content)
	}

	// Out-of-range page is empty, not an error
	empty, err := service.GetPage(ctx, 99, 2, "name")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(empty.Content) != 0 {
		t.Errorf("Expected empty page, got %+v", empty.Content)
	}

	if _, err := service.GetPage(ctx, -1, 2, "name"); err == nil {
		t.Error("Expected error for negative page")
	}

	// The paged listing accepts columns outside the GetAll allow-list
	if _, err := service.GetPage(ctx, 0, 2, "icao"); err != nil {
		t.Errorf("Expected icao to be sortable here, got %v", err)
	}
}

func TestGetAverageElevationPerCountry(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	db.Create(&gormModels.Airport{ICAO: "KJFK", Name: "Kennedy", Country: "US", Elevation: 13})
	db.Create(&gormModels.Airport{ICAO: "KLAX", Name: "Los Angeles", Country: "US", Elevation: 125})
	db.Create(&gormModels.Airport{ICAO: "EGLL", Name: "Heathrow", Country: "GB", Elevation: 83})
	db.Create(&gormModels.Airport{ICAO: "ZZZZ", Name: "Nowhere", Country: "", Elevation: 9999})

	averages, err := service.GetAverageElevationPerCountry(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(averages) != 2 {
		t.Errorf("Expected 2 countries, got %d", len(averages))
	}
	if _, ok := averages[""]; ok {
		t.Error("Expected blank country to be excluded")
	}
	if averages["US"] != 69.0 {
		t.Errorf("Expected US average 69.0, got %f", averages["US"])
	}
	if averages["GB"] != 83.0 {
		t.Errorf("Expected GB average 83.0, got %f", averages["GB"])
	}
}

func TestGetAirportsWithoutIataCode(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	db.Create(&gormModels.Airport{ICAO: "KJFK", Name: "Kennedy", IATA: "JFK"})
	db.Create(&gormModels.Airport{ICAO: "EGLL", Name: "Heathrow", IATA: ""})
	db.Create(&gormModels.Airport{ICAO: "LFPG", Name: "Charles de Gaulle", IATA: "   "})

	missing, err := service.GetAirportsWithoutIataCode(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(missing) != 2 {
		t.Fatalf("Expected 2 airports, got %d", len(missing))
	}
	for _, a := range missing {
		if a.ICAO == "KJFK" {
			t.Error("Expected KJFK to be excluded")
		}
	}
}

func TestGetTop10TimeZones(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	// 12 distinct zones: zone00 has 13 records, zone01 has 12, and so on
	// down to zone11 with 2. One record has a blank timezone.
	for zone := 0; zone < 12; zone++ {
		for i := 0; i < 13-zone; i++ {
			db.Create(&gormModels.Airport{
				ICAO: fmt.Sprintf("A%X%02d", zone, i),
				Name: "Test",
				Tz:   fmt.Sprintf("Test/Zone%02d", zone),
			})
		}
	}
	db.Create(&gormModels.Airport{ICAO: "ZZZZ", Name: "Nowhere", Tz: "  "})

	top, err := service.GetTop10TimeZones(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(top) != 10 {
		t.Fatalf("Expected 10 entries, got %d", len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i].Count > top[i-1].Count {
			t.Errorf("Expected descending counts, got %d before %d", top[i-1].Count, top[i].Count)
		}
	}
	if top[0].Tz != "Test/Zone00" || top[0].Count != 13 {
		t.Errorf("Expected Test/Zone00 with 13, got %+v", top[0])
	}
}

func TestGetTop10TimeZones_TieBreakByName(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	db.Create(&gormModels.Airport{ICAO: "AAA1", Name: "A", Tz: "Zulu/Zone"})
	db.Create(&gormModels.Airport{ICAO: "AAA2", Name: "B", Tz: "Alpha/Zone"})

	top, err := service.GetTop10TimeZones(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(top))
	}
	if top[0].Tz != "Alpha/Zone" || top[1].Tz != "Zulu/Zone" {
		t.Errorf("Expected equal counts ordered by name, got %+v", top)
	}
}
