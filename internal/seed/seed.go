package seed

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	types "github.com/yungbote/agroregistry-backend/internal/domain"
	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/platform/logger"
	"github.com/yungbote/agroregistry-backend/internal/services"
)

// FileEnv overrides the embedded fixture with a file on disk.
const FileEnv = "SEED_FILE"

//go:embed registry.yaml
var defaultFS embed.FS

type Fixture struct {
	Admin           AdminFixture   `yaml:"admin"`
	States          []StateFixture `yaml:"states"`
	Harvests        []string       `yaml:"harvests"`
	PlantedCultures []string       `yaml:"planted_cultures"`
}

type AdminFixture struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type StateFixture struct {
	UF     string   `yaml:"uf"`
	Name   string   `yaml:"name"`
	Cities []string `yaml:"cities"`
}

// Result counts rows created and rows skipped because they already existed.
type Result struct {
	Created int
	Skipped int
}

// Load reads the fixture named by SEED_FILE, or the embedded one.
func Load(log *logger.Logger) (*Fixture, error) {
	if path := strings.TrimSpace(os.Getenv(FileEnv)); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		log.Info("Loading seed fixture", "path", path)
		return Parse(raw)
	}
	raw, err := defaultFS.ReadFile("registry.yaml")
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed fixture: %w", err)
	}
	if strings.TrimSpace(f.Admin.Email) == "" {
		return nil, errors.New("seed fixture: admin.email is required")
	}
	return &f, nil
}

// Apply writes f through the registry services, so every validator and
// invariant applies. Rows that already exist are skipped, which makes
// Apply safe to re-run.
func Apply(ctx context.Context, reg services.Registry, f *Fixture, log *logger.Logger) (Result, error) {
	var res Result
	admin, err := ensureAdmin(ctx, reg, f.Admin, &res)
	if err != nil {
		return res, err
	}

	states, err := reg.States.FindAll(ctx)
	if err != nil {
		return res, err
	}
	stateIDs := map[string]uint{}
	for _, s := range states {
		stateIDs[s.Name] = s.ID
	}
	for _, sf := range f.States {
		id, ok := stateIDs[strings.TrimSpace(sf.Name)]
		if !ok {
			s, err := reg.States.Create(ctx, services.StateInput{UF: sf.UF, Name: sf.Name}, admin.ID)
			if err != nil {
				return res, fmt.Errorf("state %q: %w", sf.Name, err)
			}
			id = s.ID
			res.Created++
		} else {
			res.Skipped++
		}
		for _, city := range sf.Cities {
			_, err := reg.Cities.Create(ctx, services.CityInput{Name: city, StateID: id}, admin.ID)
			if err := tally(&res, err); err != nil {
				return res, fmt.Errorf("city %q: %w", city, err)
			}
		}
	}
	for _, name := range f.Harvests {
		_, err := reg.Harvests.Create(ctx, services.NameInput{Name: name}, admin.ID)
		if err := tally(&res, err); err != nil {
			return res, fmt.Errorf("harvest %q: %w", name, err)
		}
	}
	for _, name := range f.PlantedCultures {
		_, err := reg.PlantedCultures.Create(ctx, services.NameInput{Name: name}, admin.ID)
		if err := tally(&res, err); err != nil {
			return res, fmt.Errorf("planted culture %q: %w", name, err)
		}
	}
	log.Info("Seed applied", "created", res.Created, "skipped", res.Skipped)
	return res, nil
}

func ensureAdmin(ctx context.Context, reg services.Registry, af AdminFixture, res *Result) (*types.User, error) {
	u, err := reg.Users.Create(ctx, services.UserInput{Name: af.Name, Email: af.Email, Password: af.Password}, 0)
	if err == nil {
		res.Created++
		return u, nil
	}
	if !domainagg.IsCode(err, domainagg.CodeDuplicateName) {
		return nil, fmt.Errorf("admin user: %w", err)
	}
	users, err := reg.Users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == strings.TrimSpace(af.Email) {
			res.Skipped++
			return u, nil
		}
	}
	return nil, fmt.Errorf("admin user %q reported as duplicate but not found", af.Email)
}

func tally(res *Result, err error) error {
	switch {
	case err == nil:
		res.Created++
	case domainagg.IsCode(err, domainagg.CodeDuplicateName):
		res.Skipped++
	default:
		return err
	}
	return nil
}
