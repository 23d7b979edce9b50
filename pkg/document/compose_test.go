package document

import (
	"fmt"
	"testing"
	"time"

	"github.com/steelwheel/dealership-api/pkg/billing"
)

func sampleInput(vehicles []VehicleInput) Input {
	prices := make([]billing.Price, len(vehicles))
	for i, v := range vehicles {
		prices[i] = v.Price
	}

	return Input{
		CompanyName:   "SteelWheel Auto",
		InvoiceNumber: "INV-20260301-482",
		IssueDate:     time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
		Status:        "Pending",
		Customer: CustomerInput{
			FullName: "Jane Brown",
			TRN:      "123-456-789",
			Address:  "12 Hope Road, Kingston",
			Phone:    "+1 876 555 0100",
			Email:    "jane@example.com",
		},
		Vehicles: vehicles,
		Totals:   billing.ComputeTotals(prices),
	}
}

func makeVehicles(n int) []VehicleInput {
	vehicles := make([]VehicleInput, n)
	for i := range vehicles {
		vehicles[i] = VehicleInput{
			Make:    fmt.Sprintf("Make-%d", i),
			Model:   fmt.Sprintf("Model-%d", i),
			Year:    "2020",
			VIN:     fmt.Sprintf("VIN%017d", i),
			Color:   "Silver",
			Mileage: "45,000 km",
			Price:   billing.Price(int64(i+1) * 100000),
		}
	}
	return vehicles
}

func TestCompose_AllRowsInOrder(t *testing.T) {
	for _, n := range []int{1, 2, 10, 50} {
		t.Run(fmt.Sprintf("%d vehicles", n), func(t *testing.T) {
			vehicles := makeVehicles(n)
			doc := Compose(sampleInput(vehicles))

			if len(doc.Vehicles.Rows) != n {
				t.Fatalf("got %d rows, want %d", len(doc.Vehicles.Rows), n)
			}
			for i, row := range doc.Vehicles.Rows {
				if row.Make != vehicles[i].Make || row.VIN != vehicles[i].VIN {
					t.Errorf("row %d out of order: got %s/%s, want %s/%s",
						i, row.Make, row.VIN, vehicles[i].Make, vehicles[i].VIN)
				}
			}
		})
	}
}

func TestCompose_Totals(t *testing.T) {
	vehicles := []VehicleInput{
		{Make: "Toyota", Model: "Land Cruiser", Year: "2023", VIN: "A", Price: 100000000},
		{Make: "Honda", Model: "CR-V", Year: "2022", VIN: "B", Price: 50000000},
	}
	doc := Compose(sampleInput(vehicles))

	if doc.Summary.Subtotal != "JMD $1,500,000.00" {
		t.Errorf("subtotal = %q", doc.Summary.Subtotal)
	}
	if doc.Summary.GCTLabel != "GCT (15%)" {
		t.Errorf("gct label = %q", doc.Summary.GCTLabel)
	}
	if doc.Summary.GCT != "JMD $225,000.00" {
		t.Errorf("gct = %q", doc.Summary.GCT)
	}
	if doc.Summary.Total != "JMD $1,725,000.00" {
		t.Errorf("total = %q", doc.Summary.Total)
	}
}

func TestCompose_CustomerVerbatim(t *testing.T) {
	in := sampleInput(makeVehicles(1))
	doc := Compose(in)

	if doc.Customer.FullName != in.Customer.FullName ||
		doc.Customer.TRN != in.Customer.TRN ||
		doc.Customer.Address != in.Customer.Address ||
		doc.Customer.Phone != in.Customer.Phone ||
		doc.Customer.Email != in.Customer.Email {
		t.Errorf("customer block altered: %+v vs %+v", doc.Customer, in.Customer)
	}
}

func TestCompose_EnrichmentInvariance(t *testing.T) {
	in := sampleInput(makeVehicles(3))

	plain := Compose(in)

	in.Enrichment = "A fine pair of vehicles for the discerning driver."
	enriched := Compose(in)

	if plain.Enrichment != "" {
		t.Errorf("plain document has enrichment %q", plain.Enrichment)
	}
	if enriched.Enrichment != in.Enrichment {
		t.Errorf("enrichment = %q, want %q", enriched.Enrichment, in.Enrichment)
	}

	// Blocks 1-4 and the footer must be unaffected by the optional paragraph.
	if plain.Title != enriched.Title {
		t.Errorf("title differs: %+v vs %+v", plain.Title, enriched.Title)
	}
	if plain.Customer != enriched.Customer {
		t.Errorf("customer differs")
	}
	if len(plain.Vehicles.Rows) != len(enriched.Vehicles.Rows) {
		t.Fatalf("row counts differ")
	}
	for i := range plain.Vehicles.Rows {
		if plain.Vehicles.Rows[i] != enriched.Vehicles.Rows[i] {
			t.Errorf("row %d differs", i)
		}
	}
	if plain.Summary != enriched.Summary {
		t.Errorf("summary differs")
	}
	if plain.Footer != enriched.Footer {
		t.Errorf("footer differs")
	}
}

func TestCompose_WhitespaceEnrichmentDropped(t *testing.T) {
	in := sampleInput(makeVehicles(1))
	in.Enrichment = "   \n\t  "

	doc := Compose(in)
	if doc.Enrichment != "" {
		t.Errorf("whitespace enrichment should be dropped, got %q", doc.Enrichment)
	}
}

func TestVehicleTable_Columns(t *testing.T) {
	want := []string{"Make", "Model", "Year", "VIN", "Color", "Mileage", "Price (JMD)"}
	got := VehicleTable{}.Columns()
	if len(got) != len(want) {
		t.Fatalf("got %d columns, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column %d = %q, want %q", i, got[i], want[i])
		}
	}
}
