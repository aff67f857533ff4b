package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rackhd/redfish-gateway/internal/entity"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "not found", err: NotFound("drive %s was not found", "3"), want: KindNotFound},
		{name: "bad request", err: BadRequest("invalid osName"), want: KindBadRequest},
		{name: "method not allowed", err: MethodNotAllowed("method not allowed"), want: KindMethodNotAllowed},
		{name: "not implemented", err: NotImplemented("Not implemented for non-Dell hardware."), want: KindNotImplemented},
		{name: "assertion", err: InvalidResource(""), want: KindNotFound},
		{name: "wrapped node sentinel", err: fmt.Errorf("lookup: %w", entity.ErrNodeNotFound), want: KindNotFound},
		{name: "wrapped usecase error", err: fmt.Errorf("ctx: %w", BadRequest("x")), want: KindBadRequest},
		{name: "plain error", err: errors.New("boom"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestInvalidResource(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "invalid resource", InvalidResource("").Error())

	err := InvalidResource("no obm settings")
	assert.Equal(t, "invalid resource: no obm settings", MessageOf(err))
	assert.ErrorIs(t, err, ErrAssertion)
}

func TestMessageOf_StripsWrapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "wrapped node lookup",
			err:  fmt.Errorf("vendor - Classify: %w", fmt.Errorf("%w: %s", entity.ErrNodeNotFound, "nosuch")),
			want: "node not found: nosuch",
		},
		{name: "bare sentinel", err: fmt.Errorf("poll: %w", entity.ErrPollerNotFound), want: entity.ErrPollerNotFound.Error()},
		{name: "usecase error", err: fmt.Errorf("ctx: %w", NotFound("drive 3")), want: "drive 3"},
		{name: "plain error", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, MessageOf(tt.err))
		})
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Lookup(nil))

	plain := errors.New("connection refused")
	assert.Same(t, plain, Lookup(plain))

	bad := BadRequest("x")
	assert.Same(t, bad, Lookup(bad))

	err := Lookup(fmt.Errorf("vendor - Classify: %w", fmt.Errorf("%w: %s", entity.ErrNodeNotFound, "nosuch")))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "node not found: nosuch", err.Error())
	assert.ErrorIs(t, err, entity.ErrNodeNotFound)
}
