package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reliefhub/internal/domain"
	"reliefhub/pkg/validator"
)

func TestUrgencySeverityOrder(t *testing.T) {
	t.Parallel()

	assert.Greater(t, domain.UrgencyCritical.Severity(), domain.UrgencyHigh.Severity())
	assert.Greater(t, domain.UrgencyHigh.Severity(), domain.UrgencyMedium.Severity())
	assert.Greater(t, domain.UrgencyMedium.Severity(), domain.UrgencyLow.Severity())
	assert.Greater(t, domain.UrgencyLow.Severity(), domain.Urgency("unknown").Severity())
}

func TestRequestStatusTransitions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from, to domain.RequestStatus
		ok       bool
	}{
		{domain.RequestPending, domain.RequestAllocated, true},
		{domain.RequestPending, domain.RequestCancelled, true},
		{domain.RequestAllocated, domain.RequestFulfilled, true},
		{domain.RequestPending, domain.RequestPending, false},
		{domain.RequestPending, domain.RequestFulfilled, false},
		{domain.RequestAllocated, domain.RequestAllocated, false},
		{domain.RequestAllocated, domain.RequestCancelled, true},
		{domain.RequestAllocated, domain.RequestPending, false},
		{domain.RequestCancelled, domain.RequestAllocated, false},
		{domain.RequestFulfilled, domain.RequestCancelled, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.ok, c.from.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestRecipient(t *testing.T) {
	t.Parallel()

	user := uuid.New()
	other := uuid.New()

	b := domain.Broadcast()
	assert.True(t, b.IsBroadcast())
	assert.Nil(t, b.Ptr())
	assert.True(t, b.VisibleTo(other))

	u := domain.UserRecipient(user)
	id, ok := u.UserID()
	require.True(t, ok)
	assert.Equal(t, user, id)
	assert.True(t, u.VisibleTo(user))
	assert.False(t, u.VisibleTo(other))
	assert.Equal(t, u, domain.RecipientFromPtr(u.Ptr()))
	assert.True(t, domain.RecipientFromPtr(nil).IsBroadcast())
}

func TestRecipientJSON(t *testing.T) {
	t.Parallel()

	user := uuid.New()
	n := domain.Notification{Message: "hi", Recipient: domain.UserRecipient(user)}

	b, err := json.Marshal(n)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"recipient":"`+user.String()+`"`)

	var back domain.Notification
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, n.Recipient, back.Recipient)

	b, err = json.Marshal(domain.Notification{Recipient: domain.Broadcast()})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"recipient":null`)

	require.NoError(t, json.Unmarshal([]byte(`{"recipient":null}`), &back))
	assert.True(t, back.Recipient.IsBroadcast())
}

func TestPrincipalHasRole(t *testing.T) {
	t.Parallel()

	p := domain.Principal{Role: domain.RoleNGO}
	assert.True(t, p.HasRole(domain.RoleAdmin, domain.RoleNGO))
	assert.False(t, p.HasRole(domain.RoleVictim))
}

func TestLocationInput_RequiresCoordinates(t *testing.T) {
	t.Parallel()

	var missing domain.CreateAidRequest
	require.NoError(t, json.Unmarshal([]byte(`{"type":"Food","quantity":1,"location":{"name":"Camp"}}`), &missing))
	err := validator.ValidateStruct(missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lat")
	assert.Contains(t, err.Error(), "lng")

	var equator domain.CreateAidRequest
	require.NoError(t, json.Unmarshal([]byte(`{"type":"Food","quantity":1,"location":{"name":"Gulf of Guinea","lat":0,"lng":0}}`), &equator))
	require.NoError(t, validator.ValidateStruct(equator))
	assert.Equal(t, domain.Location{Name: "Gulf of Guinea"}, equator.Location.Location())
}
