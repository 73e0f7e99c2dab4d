package admin

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-admin-console/components/entities/orders"
	"github.com/goliatone/go-admin-console/components/entities/products"
	"github.com/goliatone/go-admin-console/components/entities/users"
)

//go:embed seed/default.yaml
var defaultSeedYAML []byte

//go:embed seed/schema.json
var seedSchemaJSON []byte

const seedSchemaName = "seed.json"

// ErrDuplicateSeedID reports two seed records sharing an id within one
// collection.
var ErrDuplicateSeedID = errors.New("admin: duplicate seed id")

// Seed is the initial record set of a workspace.
type Seed struct {
	Products []products.Product `yaml:"products" json:"products"`
	Orders   []orders.Order     `yaml:"orders" json:"orders"`
	Users    []users.User       `yaml:"users" json:"users"`
}

var (
	seedSchemaOnce sync.Once
	seedSchema     *jsonschema.Schema
	seedSchemaErr  error
)

// DefaultSeed returns the embedded sample records.
func DefaultSeed() Seed {
	seed, err := LoadSeed(defaultSeedYAML)
	if err != nil {
		panic(fmt.Sprintf("admin: embedded seed is invalid: %v", err))
	}
	return seed
}

// LoadSeedFile reads and validates a YAML seed document from path.
func LoadSeedFile(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("admin: read seed %s: %w", path, err)
	}
	return LoadSeed(data)
}

// LoadSeed validates a YAML seed document against the embedded schema and
// decodes it.
func LoadSeed(data []byte) (Seed, error) {
	if err := ValidateSeed(data); err != nil {
		return Seed{}, err
	}
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("admin: decode seed: %w", err)
	}
	if err := errors.Join(
		uniqueIDs(products.CollectionName, seed.Products, func(p products.Product) int { return p.ID }),
		uniqueIDs(orders.CollectionName, seed.Orders, func(o orders.Order) int { return o.ID }),
		uniqueIDs(users.CollectionName, seed.Users, func(u users.User) int { return u.ID }),
	); err != nil {
		return Seed{}, err
	}
	return seed, nil
}

func uniqueIDs[T any](collection string, records []T, id func(T) int) error {
	seen := make(map[int]struct{}, len(records))
	var errs []error
	for _, record := range records {
		value := id(record)
		if _, dup := seen[value]; dup {
			errs = append(errs, fmt.Errorf("%w: %s %d", ErrDuplicateSeedID, collection, value))
			continue
		}
		seen[value] = struct{}{}
	}
	return errors.Join(errs...)
}

// ValidateSeed checks a YAML seed document against the embedded schema.
func ValidateSeed(data []byte) error {
	schema, err := compiledSeedSchema()
	if err != nil {
		return err
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("admin: parse seed: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("admin: marshal seed: %w", err)
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("admin: normalize seed: %w", err)
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("admin: seed failed validation: %w", err)
	}
	return nil
}

func compiledSeedSchema() (*jsonschema.Schema, error) {
	seedSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(seedSchemaName, bytes.NewReader(seedSchemaJSON)); err != nil {
			seedSchemaErr = fmt.Errorf("admin: load seed schema: %w", err)
			return
		}
		seedSchema, seedSchemaErr = compiler.Compile(seedSchemaName)
		if seedSchemaErr != nil {
			seedSchemaErr = fmt.Errorf("admin: compile seed schema: %w", seedSchemaErr)
		}
	})
	return seedSchema, seedSchemaErr
}
