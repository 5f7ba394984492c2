package dashboard

const (
	SoilUseArableLabel     = "Arable area"
	SoilUseVegetationLabel = "Vegetation area"
)

// ChartItem is one bar/slice of a dashboard chart.
type ChartItem struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Charts struct {
	ByState          []ChartItem `json:"byState"`
	ByPlantedCulture []ChartItem `json:"byPlantedCulture"`
	BySoilUse        []ChartItem `json:"bySoilUse"`
}

// Report is the fixed-shape rollup over the whole registry.
type Report struct {
	TotalRuralProperties int64   `json:"totalRuralProperties"`
	TotalArea            float64 `json:"totalArea"`
	Charts               Charts  `json:"charts"`
}

// AreaSums holds the summed areas of every rural property.
type AreaSums struct {
	TotalArea      float64 `gorm:"column:total_area"`
	ArableArea     float64 `gorm:"column:arable_area"`
	VegetationArea float64 `gorm:"column:vegetation_area"`
}

// EmptyReport is the report of a registry with no rural properties.
func EmptyReport() *Report {
	return &Report{
		Charts: Charts{
			ByState:          []ChartItem{},
			ByPlantedCulture: []ChartItem{},
			BySoilUse: []ChartItem{
				{Label: SoilUseArableLabel, Value: 0},
				{Label: SoilUseVegetationLabel, Value: 0},
			},
		},
	}
}
