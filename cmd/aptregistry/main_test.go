package main

import (
	"bytes"
	"context"
	"testing"

	"go.llib.dev/aptregistry/internal/config"
	"go.llib.dev/aptregistry/pkg/aptlist"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestMainDemo(t *testing.T) {
	s := testcase.NewSpec(t)

	cfg := let.Var(s, func(t *testcase.T) config.Config {
		return config.Config{Count: 3, Lower: 0, Upper: 100, Seed: 42, LogLevel: logging.LevelDebug}
	})

	type result struct {
		Out  string
		Logs string
		Err  error
	}
	act := let.Act(func(t *testcase.T) result {
		log, logs := logging.Stub(t)
		var out bytes.Buffer
		err := Main(context.Background(), cfg.Get(t), log, &out)
		return result{Out: out.String(), Logs: logs.String(), Err: err}
	})

	s.Then("the merged building lists the wing in reverse", func(t *testcase.T) {
		r := act(t)
		assert.NoError(t, r.Err)
		assert.Contains(t, r.Out, "merged (4): Apartment 99: c -> Apartment 8: d -> Apartment 6: a -> Apartment 9: aa -> nullptr")
	})

	s.Then("the generated registry follows the configuration", func(t *testcase.T) {
		r := act(t)
		assert.NoError(t, r.Err)

		exp := aptlist.NewRandom[string](3, 0, 100, 42)
		assert.Contains(t, r.Out, "generated (3): "+exp.String())
		assert.Contains(t, r.Out, "cleaned (2): ")
		assert.Contains(t, r.Logs, "random registry generated")
	})

	s.When("nothing is generated", func(s *testcase.Spec) {
		cfg.Let(s, func(t *testcase.T) config.Config {
			c := cfg.Super(t)
			c.Count = 0
			return c
		})

		s.Then("the skipped update is logged", func(t *testcase.T) {
			r := act(t)
			assert.NoError(t, r.Err)
			assert.Contains(t, r.Logs, "apartment update skipped")
			assert.Contains(t, r.Out, "cleaned (0): nullptr")
		})
	})
}
