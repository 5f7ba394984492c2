package services

import (
	"testing"

	types "github.com/yungbote/agroregistry-backend/internal/domain"
	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
)

func TestProducerCpfCnpjIsNormalizedAndUnique(t *testing.T) {
	h := newHarness(t)
	sp := h.state(t, "SP", "Sao Paulo")
	c := h.city(t, sp.ID, "Campinas")

	p := h.producer(t, c.ID, "529.982.247-25")
	if p.CpfCnpj != "52998224725" {
		t.Fatalf("Producers.Create: expected digits-only cpf, got %q", p.CpfCnpj)
	}
	if p.City == nil || p.City.Name != "Campinas" || p.CreatedByID != h.actor.ID {
		t.Fatalf("Producers.Create: unexpected row %+v", p)
	}

	_, err := h.reg.Producers.Create(h.ctx, ProducerInput{CpfCnpj: "52998224725", Name: "Outro", CityID: c.ID}, h.actor.ID)
	if !domainagg.IsCode(err, domainagg.CodeDuplicateName) || domainagg.DetailsOf(err)["cpf_cnpj"] != "52998224725" {
		t.Fatalf("Producers.Create: expected duplicate cpf_cnpj, got %v", err)
	}

	cnpj, err := h.reg.Producers.Create(h.ctx, ProducerInput{CpfCnpj: "11.222.333/0001-81", Name: "Agro SA", CityID: c.ID}, h.actor.ID)
	if err != nil {
		t.Fatalf("Producers.Create (cnpj): %v", err)
	}
	if cnpj.CpfCnpj != "11222333000181" {
		t.Fatalf("Producers.Create: expected digits-only cnpj, got %q", cnpj.CpfCnpj)
	}

	for _, bad := range []string{"", "123", "111.111.111-11", "52998224724"} {
		_, err := h.reg.Producers.Create(h.ctx, ProducerInput{CpfCnpj: bad, Name: "X", CityID: c.ID}, h.actor.ID)
		if !domainagg.IsCode(err, domainagg.CodeValidation) {
			t.Fatalf("Producers.Create(%q): expected validation error, got %v", bad, err)
		}
	}
	if n := h.count(t, &types.Producer{}); n != 2 {
		t.Fatalf("producers: expected 2 rows, got %d", n)
	}
}

func TestProducerUpdateIsPartial(t *testing.T) {
	h := newHarness(t)
	sp := h.state(t, "SP", "Sao Paulo")
	campinas := h.city(t, sp.ID, "Campinas")
	sumare := h.city(t, sp.ID, "Sumare")
	p := h.producer(t, campinas.ID, "52998224725")
	other := h.producer(t, campinas.ID, "11144477735")

	updated, err := h.reg.Producers.Update(h.ctx, p.ID, ProducerPatch{Name: ptr("Joao Souza")})
	if err != nil {
		t.Fatalf("Producers.Update: %v", err)
	}
	if updated.Name != "Joao Souza" || updated.CpfCnpj != "52998224725" || updated.CityID != campinas.ID {
		t.Fatalf("Producers.Update: unexpected row %+v", updated)
	}

	// Same identifier in another format is not a change.
	if _, err := h.reg.Producers.Update(h.ctx, p.ID, ProducerPatch{CpfCnpj: ptr("529.982.247-25"), CityID: ptr(sumare.ID)}); err != nil {
		t.Fatalf("Producers.Update (same cpf): %v", err)
	}
	_, err = h.reg.Producers.Update(h.ctx, p.ID, ProducerPatch{CpfCnpj: ptr(other.CpfCnpj)})
	if !domainagg.IsCode(err, domainagg.CodeDuplicateName) {
		t.Fatalf("Producers.Update: expected duplicate cpf_cnpj, got %v", err)
	}
	got, err := h.reg.Producers.FindOne(h.ctx, p.ID)
	if err != nil {
		t.Fatalf("Producers.FindOne: %v", err)
	}
	if got.CityID != sumare.ID || got.City == nil || got.City.Name != "Sumare" {
		t.Fatalf("Producers.FindOne: unexpected row %+v", got)
	}
}

func TestProducerRemoveCascades(t *testing.T) {
	h := newHarness(t)
	sp := h.state(t, "SP", "Sao Paulo")
	c := h.city(t, sp.ID, "Campinas")
	hv := h.harvest(t, "Safra 2024")
	soja := h.culture(t, "Soja")

	p := h.producer(t, c.ID, "52998224725")
	a := h.property(t, p.ID, c.ID, 100, 60, 30)
	b := h.property(t, p.ID, c.ID, 50, 20, 20)
	h.cultivation(t, a.ID, hv.ID, soja.ID)
	h.cultivation(t, b.ID, hv.ID, soja.ID)

	keep := h.producer(t, c.ID, "11144477735")
	kept := h.property(t, keep.ID, c.ID, 10, 5, 5)
	h.cultivation(t, kept.ID, hv.ID, soja.ID)

	if err := h.reg.Producers.Remove(h.ctx, p.ID); err != nil {
		t.Fatalf("Producers.Remove: %v", err)
	}
	if n := h.count(t, &types.Producer{}); n != 1 {
		t.Fatalf("producers: expected 1 row, got %d", n)
	}
	if n := h.count(t, &types.RuralProperty{}); n != 1 {
		t.Fatalf("rural_properties: expected 1 row, got %d", n)
	}
	if n := h.count(t, &types.Cultivation{}); n != 1 {
		t.Fatalf("cultivations: expected 1 row, got %d", n)
	}
	if _, err := h.reg.RuralProperties.FindOne(h.ctx, kept.ID); err != nil {
		t.Fatalf("RuralProperties.FindOne: other producer's property was removed: %v", err)
	}
	// Catalog rows are shared and survive the cascade.
	if n := h.count(t, &types.Harvest{}); n != 1 {
		t.Fatalf("harvests: expected 1 row, got %d", n)
	}
}

func TestProducerRemoveMissing(t *testing.T) {
	h := newHarness(t)
	sp := h.state(t, "SP", "Sao Paulo")
	c := h.city(t, sp.ID, "Campinas")
	h.producer(t, c.ID, "52998224725")

	err := h.reg.Producers.Remove(h.ctx, 999)
	if !domainagg.IsCode(err, domainagg.CodeNotFound) || domainagg.KindOf(err) != domainagg.KindProducer {
		t.Fatalf("Producers.Remove: expected NotFound(Producer), got %v", err)
	}
	if n := h.count(t, &types.Producer{}); n != 1 {
		t.Fatalf("producers: store changed by failed remove, got %d rows", n)
	}
	last := h.hooks.Last()
	if last.Op != "producer.remove" || last.Status != "not_found" {
		t.Fatalf("hooks: unexpected last operation %+v", last)
	}
}
