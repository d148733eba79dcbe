package analysis

import "strings"

// Sector is the screener sector code stored with each analysis
type Sector string

const (
	SectorTechnology    Sector = "TECHNOLOGY"
	SectorFinancials    Sector = "FINANCIALS"
	SectorHealth        Sector = "HEALTH"
	SectorConsDisc      Sector = "CONS DISC"
	SectorIndustrials   Sector = "INDUSTRIALS"
	SectorCommunication Sector = "COMMUNICATION SVS"
	SectorConsStaples   Sector = "CONS STPL"
	SectorEnergy        Sector = "ENERGY"
	SectorMaterials     Sector = "MATERIALS"
	SectorUtilities     Sector = "UTILITIES"
	SectorRealEstate    Sector = "REAL ESTATE"
)

// Sectors lists every sector code in display order
var Sectors = []Sector{
	SectorTechnology,
	SectorFinancials,
	SectorHealth,
	SectorConsDisc,
	SectorIndustrials,
	SectorCommunication,
	SectorConsStaples,
	SectorEnergy,
	SectorMaterials,
	SectorUtilities,
	SectorRealEstate,
}

// vendorSectors maps GICS-style names reported by market data vendors
var vendorSectors = map[string]Sector{
	"technology":             SectorTechnology,
	"information technology": SectorTechnology,
	"financial services":     SectorFinancials,
	"financials":             SectorFinancials,
	"financial":              SectorFinancials,
	"healthcare":             SectorHealth,
	"health care":            SectorHealth,
	"consumer cyclical":      SectorConsDisc,
	"consumer discretionary": SectorConsDisc,
	"industrials":            SectorIndustrials,
	"communication services": SectorCommunication,
	"consumer defensive":     SectorConsStaples,
	"consumer staples":       SectorConsStaples,
	"energy":                 SectorEnergy,
	"basic materials":        SectorMaterials,
	"materials":              SectorMaterials,
	"utilities":              SectorUtilities,
	"real estate":            SectorRealEstate,
}

// IsValid returns true if s is a known sector code
func (s Sector) IsValid() bool {
	for _, known := range Sectors {
		if s == known {
			return true
		}
	}
	return false
}

// ParseSector accepts either a sector code or a vendor sector name.
// Unknown input yields an empty sector.
func ParseSector(raw string) Sector {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if code := Sector(strings.ToUpper(trimmed)); code.IsValid() {
		return code
	}
	return vendorSectors[strings.ToLower(trimmed)]
}
