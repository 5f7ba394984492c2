package aggregates

import (
	"strings"
	"unicode"
)

// Kind names one entity type of the registry.
type Kind string

const (
	KindUser           Kind = "User"
	KindState          Kind = "State"
	KindCity           Kind = "City"
	KindProducer       Kind = "Producer"
	KindRuralProperty  Kind = "RuralProperty"
	KindHarvest        Kind = "Harvest"
	KindPlantedCulture Kind = "PlantedCulture"
	KindCultivation    Kind = "Cultivation"
)

// Label renders the kind for humans: "RuralProperty" -> "rural property".
func (k Kind) Label() string {
	var b strings.Builder
	for i, r := range string(k) {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte(' ')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Contract describes the write-side policy of one entity kind.
type Contract struct {
	Kind Kind
	// UniqueField is the column guarded by a unique constraint, if any.
	UniqueField string
	// Owned kinds record the acting user as created_by.
	Owned bool
	Notes string
}

// Op returns the canonical operation name, e.g. "producer.create".
func (c Contract) Op(action string) string {
	return strings.ReplaceAll(c.Kind.Label(), " ", "_") + "." + action
}

var contracts = map[Kind]Contract{
	KindUser:           {Kind: KindUser, UniqueField: "email"},
	KindState:          {Kind: KindState, UniqueField: "name"},
	KindCity:           {Kind: KindCity, UniqueField: "name", Notes: "name is unique across all states"},
	KindProducer:       {Kind: KindProducer, UniqueField: "cpf_cnpj", Owned: true, Notes: "delete cascades to rural properties and their cultivations"},
	KindRuralProperty:  {Kind: KindRuralProperty, Owned: true, Notes: "arable_area + vegetation_area <= total_area"},
	KindHarvest:        {Kind: KindHarvest, UniqueField: "name", Owned: true},
	KindPlantedCulture: {Kind: KindPlantedCulture, UniqueField: "name", Owned: true},
	KindCultivation:    {Kind: KindCultivation, Owned: true},
}

// ContractFor returns the write contract registered for kind.
func ContractFor(kind Kind) Contract {
	if c, ok := contracts[kind]; ok {
		return c
	}
	return Contract{Kind: kind}
}
