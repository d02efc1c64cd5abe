package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equipment_portal/apperr"
	"equipment_portal/models"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func projector(qty int) *models.Equipment {
	eq := &models.Equipment{ID: "eq-1", Name: "Projector", Condition: "Good", Quantity: qty}
	eq.SyncAvailability()
	return eq
}

func pendingReq(id, start, end string) *models.BorrowRequest {
	return &models.BorrowRequest{
		ID:          id,
		EquipmentID: "eq-1",
		Requester:   "alice",
		StartDate:   start,
		EndDate:     end,
		Status:      models.StatusPending,
		CreatedAt:   testNow,
	}
}

func TestNewRequest(t *testing.T) {
	eq := projector(1)

	r, err := NewRequest(eq, "alice", "2024-02-01", "2024-02-03", nil, testNow)
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, models.StatusPending, r.Status)
	assert.Equal(t, "alice", r.Requester)
	assert.Equal(t, "eq-1", r.EquipmentID)
	// Creation is a soft reservation, inventory is untouched.
	assert.Equal(t, 1, eq.Quantity)
	assert.True(t, eq.Available)
}

func TestNewRequestRejectsBadDates(t *testing.T) {
	eq := projector(1)

	_, err := NewRequest(eq, "alice", "soon", "2024-02-03", nil, testNow)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
}

func TestNewRequestRejectsConflictWithApproved(t *testing.T) {
	eq := projector(1)
	approved := []models.BorrowRequest{
		{ID: "x", StartDate: "2024-02-01", EndDate: "2024-02-03", Status: models.StatusApproved},
	}

	_, err := NewRequest(eq, "bob", "2024-02-03", "2024-02-06", approved, testNow)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))

	// Overlapping pending requests may coexist; only approval is exclusive.
	r, err := NewRequest(eq, "bob", "2024-02-04", "2024-02-06", approved, testNow)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, r.Status)
}

func TestApproveConsumesOneUnit(t *testing.T) {
	eq := projector(1)
	r := pendingReq("r1", "2024-02-01", "2024-02-03")

	require.NoError(t, Approve(r, eq, nil, "staffer", testNow))

	assert.Equal(t, models.StatusApproved, r.Status)
	require.NotNil(t, r.Approver)
	assert.Equal(t, "staffer", *r.Approver)
	require.NotNil(t, r.ApprovedAt)
	assert.Equal(t, testNow, *r.ApprovedAt)
	assert.Equal(t, 0, eq.Quantity)
	assert.False(t, eq.Available)
}

func TestApproveFailsAtZeroQuantity(t *testing.T) {
	eq := projector(0)
	r := pendingReq("r1", "2024-02-01", "2024-02-03")

	err := Approve(r, eq, nil, "staffer", testNow)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))
	// State unchanged on failure.
	assert.Equal(t, models.StatusPending, r.Status)
	assert.Nil(t, r.Approver)
	assert.Equal(t, 0, eq.Quantity)
}

func TestApproveReChecksOverlap(t *testing.T) {
	eq := projector(5)
	r := pendingReq("r2", "2024-02-02", "2024-02-04")
	others := []models.BorrowRequest{
		{ID: "r1", StartDate: "2024-02-01", EndDate: "2024-02-03", Status: models.StatusApproved},
	}

	err := Approve(r, eq, others, "staffer", testNow)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))
	assert.Equal(t, models.StatusPending, r.Status)
	assert.Equal(t, 5, eq.Quantity)
}

func TestApproveRequiresPending(t *testing.T) {
	for _, status := range []models.RequestStatus{models.StatusApproved, models.StatusRejected, models.StatusReturned} {
		eq := projector(2)
		r := pendingReq("r1", "2024-02-01", "2024-02-03")
		r.Status = status

		err := Approve(r, eq, nil, "staffer", testNow)
		require.Error(t, err, "status %s", status)
		assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))
		assert.Equal(t, status, r.Status)
		assert.Equal(t, 2, eq.Quantity)
	}
}

func TestRejectRequiresPending(t *testing.T) {
	r := pendingReq("r1", "2024-02-01", "2024-02-03")
	require.NoError(t, Reject(r, "staffer", testNow))
	assert.Equal(t, models.StatusRejected, r.Status)
	require.NotNil(t, r.RejectedAt)

	// Rejected is terminal; a second decision is refused.
	err := Reject(r, "staffer", testNow)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))

	approved := pendingReq("r2", "2024-02-01", "2024-02-03")
	approved.Status = models.StatusApproved
	err = Reject(approved, "staffer", testNow)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))
}

func TestReturnRequiresApproved(t *testing.T) {
	eq := projector(0)
	r := pendingReq("r1", "2024-02-01", "2024-02-03")

	err := Return(r, eq, testNow)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))
	assert.Equal(t, 0, eq.Quantity)
}

func TestReturnGivesUnitBack(t *testing.T) {
	eq := projector(1)
	r := pendingReq("r1", "2024-02-01", "2024-02-03")
	require.NoError(t, Approve(r, eq, nil, "staffer", testNow))
	require.Equal(t, 0, eq.Quantity)

	require.NoError(t, Return(r, eq, testNow))

	assert.Equal(t, models.StatusReturned, r.Status)
	require.NotNil(t, r.ReturnedAt)
	assert.Equal(t, 1, eq.Quantity)
	assert.True(t, eq.Available)

	// Returned is terminal.
	err := Return(r, eq, testNow)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))
	assert.Equal(t, 1, eq.Quantity)
}

func TestAllowReturn(t *testing.T) {
	r := pendingReq("r1", "2024-02-01", "2024-02-03") // requester alice

	require.NoError(t, AllowReturn(r, "alice", models.RoleStudent))
	require.NoError(t, AllowReturn(r, "somestaff", models.RoleStaff))
	require.NoError(t, AllowReturn(r, "boss", models.RoleAdmin))

	err := AllowReturn(r, "bob", models.RoleStudent)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeForbidden, apperr.CodeOf(err))
}

func TestBlocksDeletion(t *testing.T) {
	withStatus := func(status models.RequestStatus) models.BorrowRequest {
		r := pendingReq("r-"+string(status), "2024-02-01", "2024-02-03")
		r.Status = status
		return *r
	}

	// Pending or approved requests reference live bookings and block.
	for _, status := range []models.RequestStatus{models.StatusPending, models.StatusApproved} {
		err := BlocksDeletion([]models.BorrowRequest{withStatus(status)})
		require.Error(t, err, "status %s", status)
		assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))
	}

	// Terminal history alone does not.
	require.NoError(t, BlocksDeletion([]models.BorrowRequest{
		withStatus(models.StatusRejected),
		withStatus(models.StatusReturned),
	}))
	require.NoError(t, BlocksDeletion(nil))

	// One live booking among history still blocks.
	err := BlocksDeletion([]models.BorrowRequest{
		withStatus(models.StatusReturned),
		withStatus(models.StatusPending),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))
}

// Full walk through the projector scenario: one unit, approve A, conflicting
// B can exist but never win, capacity is replenished by returning A.
func TestProjectorScenario(t *testing.T) {
	eq := projector(1)

	a, err := NewRequest(eq, "alice", "2024-02-01", "2024-02-03", nil, testNow)
	require.NoError(t, err)
	require.NoError(t, Approve(a, eq, nil, "staffer", testNow))
	assert.Equal(t, 0, eq.Quantity)
	assert.False(t, eq.Available)

	approved := []models.BorrowRequest{*a}

	// B overlaps A: creation already refuses.
	_, err = NewRequest(eq, "bob", "2024-02-02", "2024-02-05", approved, testNow)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))

	// A pending B created before A was approved cannot be approved now:
	// both the overlap and the capacity check refuse it.
	b := pendingReq("b", "2024-02-02", "2024-02-05")
	b.Requester = "bob"
	err = Approve(b, eq, approved, "staffer", testNow)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))

	// Non-overlapping C can be created but not approved while quantity is 0.
	c, err := NewRequest(eq, "carol", "2024-02-10", "2024-02-12", approved, testNow)
	require.NoError(t, err)
	err = Approve(c, eq, approved, "staffer", testNow)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))

	// Returning A replenishes capacity; C now goes through.
	require.NoError(t, Return(a, eq, testNow))
	assert.Equal(t, 1, eq.Quantity)
	assert.True(t, eq.Available)

	require.NoError(t, Approve(c, eq, nil, "staffer", testNow))
	assert.Equal(t, 0, eq.Quantity)

	// Invariant: no two approved requests for the equipment overlap.
	assert.False(t, Overlaps(a.StartDate, a.EndDate, c.StartDate, c.EndDate))
}
