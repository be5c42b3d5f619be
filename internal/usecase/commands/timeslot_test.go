//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gin-order-service/internal/domain/timeslot"
	reqdto "gin-order-service/internal/handler/dto/request"
	"gin-order-service/internal/infra"
	"gin-order-service/internal/pkg/clock"
	"gin-order-service/internal/pkg/errs"
	"gin-order-service/internal/pkg/ptr"
	"gin-order-service/internal/usecase/commands"
	"gin-order-service/tests/common/uowtest"
	sharedmock "gin-order-service/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TimeslotCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	timeslots *sharedmock.MockTimeslotRepository
	uow       *uowtest.UnitOfWork
	clock     *clock.MockClock
	commands  commands.TimeslotCommands
}

func (s *TimeslotCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.timeslots = sharedmock.NewMockTimeslotRepository(s.ctrl)
	s.uow = uowtest.New(&uowtest.Tx{TimeslotRepo: s.timeslots})
	s.clock = clock.NewMockClock(testNow)
	s.commands = commands.NewTimeslotCommands(s.uow, s.clock, timeslot.Capacity{MaxOrders: 20, BufferCapacity: 2, CutoffHours: 5})
}

func (s *TimeslotCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTimeslotCommandsSuite(t *testing.T) {
	suite.Run(t, new(TimeslotCommandsTestSuite))
}

func slotAt(start time.Time, capacity timeslot.Capacity, active bool, orderIDs ...uuid.UUID) *timeslot.Timeslot {
	return timeslot.Reconstruct(
		uuid.New(), start, start.Add(2*time.Hour), capacity,
		start.Weekday(), true, nil, active,
		orderIDs,
		testNow, testNow,
	)
}

func (s *TimeslotCommandsTestSuite) TestReserve() {
	ctx := context.Background()
	capacity := timeslot.Capacity{MaxOrders: 1, BufferCapacity: 1, CutoffHours: 2}
	tomorrow := testNow.Add(24 * time.Hour)

	s.Run("success: reservation is saved and counted", func() {
		s.SetupTest()
		slot := slotAt(tomorrow, capacity, true)
		orderID := uuid.New()
		s.timeslots.EXPECT().FindForUpdate(gomock.Any(), slot.ID()).Return(slot, nil)
		s.timeslots.EXPECT().SaveReservation(gomock.Any(), slot, orderID).Return(nil)

		view, err := s.commands.Reserve(ctx, slot.ID(), orderID)

		s.Require().NoError(err)
		s.Equal(1, view.CurrentOrders)
		s.Equal(0, view.RemainingCapacity)
		s.Equal(1, view.RemainingBufferCapacity)
	})

	s.Run("success: repeated reservation of the same order is a no-op", func() {
		s.SetupTest()
		orderID := uuid.New()
		slot := slotAt(tomorrow, capacity, true, orderID)
		s.timeslots.EXPECT().FindForUpdate(gomock.Any(), slot.ID()).Return(slot, nil)

		view, err := s.commands.Reserve(ctx, slot.ID(), orderID)

		s.Require().NoError(err)
		s.Equal(1, view.CurrentOrders)
	})

	s.Run("error: buffer exhausted", func() {
		s.SetupTest()
		slot := slotAt(tomorrow, capacity, true, uuid.New(), uuid.New())
		s.timeslots.EXPECT().FindForUpdate(gomock.Any(), slot.ID()).Return(slot, nil)

		_, err := s.commands.Reserve(ctx, slot.ID(), uuid.New())

		s.True(errs.Is(err, errs.ErrCapacityExceeded))
		s.Contains(errs.Details(err), "slot_id="+slot.ID().String())
	})

	s.Run("error: check constraint lost a race", func() {
		s.SetupTest()
		slot := slotAt(tomorrow, capacity, true)
		s.timeslots.EXPECT().FindForUpdate(gomock.Any(), slot.ID()).Return(slot, nil)
		s.timeslots.EXPECT().SaveReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("current_orders check", nil, infra.KindConflict))

		_, err := s.commands.Reserve(ctx, slot.ID(), uuid.New())

		s.True(errs.Is(err, errs.ErrCapacityExceeded))
	})

	s.Run("error: cutoff passed", func() {
		s.SetupTest()
		slot := slotAt(testNow.Add(time.Hour), capacity, true)
		s.timeslots.EXPECT().FindForUpdate(gomock.Any(), slot.ID()).Return(slot, nil)

		_, err := s.commands.Reserve(ctx, slot.ID(), uuid.New())

		s.True(errs.Is(err, errs.ErrCutoffPassed))
	})

	s.Run("error: inactive slot is reported as missing", func() {
		s.SetupTest()
		slot := slotAt(tomorrow, capacity, false)
		s.timeslots.EXPECT().FindForUpdate(gomock.Any(), slot.ID()).Return(slot, nil)

		_, err := s.commands.Reserve(ctx, slot.ID(), uuid.New())

		s.True(errs.Is(err, errs.ErrTimeslotNotFound))
	})

	s.Run("error: unknown slot", func() {
		s.SetupTest()
		id := uuid.New()
		s.timeslots.EXPECT().FindForUpdate(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("timeslot not found", nil, infra.KindNotFound))

		_, err := s.commands.Reserve(ctx, id, uuid.New())

		s.True(errs.Is(err, errs.ErrTimeslotNotFound))
	})
}

func (s *TimeslotCommandsTestSuite) TestRelease() {
	ctx := context.Background()
	capacity := timeslot.Capacity{MaxOrders: 3, CutoffHours: 2}

	s.Run("success: held order is released", func() {
		s.SetupTest()
		orderID := uuid.New()
		slot := slotAt(testNow.Add(24*time.Hour), capacity, true, orderID)
		s.timeslots.EXPECT().FindForUpdate(gomock.Any(), slot.ID()).Return(slot, nil)
		s.timeslots.EXPECT().SaveRelease(gomock.Any(), slot, orderID).Return(nil)

		view, err := s.commands.Release(ctx, slot.ID(), orderID)

		s.Require().NoError(err)
		s.Equal(0, view.CurrentOrders)
	})

	s.Run("success: releasing an order not held changes nothing", func() {
		s.SetupTest()
		slot := slotAt(testNow.Add(24*time.Hour), capacity, true, uuid.New())
		s.timeslots.EXPECT().FindForUpdate(gomock.Any(), slot.ID()).Return(slot, nil)

		view, err := s.commands.Release(ctx, slot.ID(), uuid.New())

		s.Require().NoError(err)
		s.Equal(1, view.CurrentOrders)
	})

	s.Run("success: release is allowed after cutoff", func() {
		s.SetupTest()
		orderID := uuid.New()
		slot := slotAt(testNow.Add(30*time.Minute), capacity, true, orderID)
		s.timeslots.EXPECT().FindForUpdate(gomock.Any(), slot.ID()).Return(slot, nil)
		s.timeslots.EXPECT().SaveRelease(gomock.Any(), slot, orderID).Return(nil)

		_, err := s.commands.Release(ctx, slot.ID(), orderID)

		s.NoError(err)
	})
}

func (s *TimeslotCommandsTestSuite) TestUpdate() {
	ctx := context.Background()

	s.Run("success: omitted fields keep their value", func() {
		s.SetupTest()
		slot := slotAt(testNow.Add(24*time.Hour), timeslot.Capacity{MaxOrders: 10, BufferCapacity: 2, CutoffHours: 4}, true)
		s.timeslots.EXPECT().FindForUpdate(gomock.Any(), slot.ID()).Return(slot, nil)
		s.timeslots.EXPECT().UpdateSettings(gomock.Any(), slot).Return(nil)

		view, err := s.commands.Update(ctx, slot.ID(), reqdto.UpdateTimeslotRequest{MaxOrders: ptr.Of(15)})

		s.Require().NoError(err)
		s.Equal(15, view.MaxOrders)
		s.Equal(2, view.BufferCapacity)
		s.Equal(4, view.CutoffHours)
		s.True(view.IsActive)
	})

	s.Run("error: capacity below current orders", func() {
		s.SetupTest()
		slot := slotAt(testNow.Add(24*time.Hour), timeslot.Capacity{MaxOrders: 3, CutoffHours: 2}, true, uuid.New(), uuid.New())
		s.timeslots.EXPECT().FindForUpdate(gomock.Any(), slot.ID()).Return(slot, nil)

		_, err := s.commands.Update(ctx, slot.ID(), reqdto.UpdateTimeslotRequest{MaxOrders: ptr.Of(1)})

		s.True(errs.Is(err, errs.ErrValidationFailed))
		s.Equal(3, slot.MaxOrders())
	})
}

func (s *TimeslotCommandsTestSuite) TestGenerate() {
	ctx := context.Background()

	s.Run("success: one slot per template entry per day", func() {
		s.SetupTest()
		var stored []*timeslot.Timeslot
		s.timeslots.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, slots []*timeslot.Timeslot) error {
				stored = slots
				return nil
			})

		views, err := s.commands.Generate(ctx, reqdto.GenerateSlotsRequest{
			StartDate: "2026-03-11",
			EndDate:   "2026-03-13",
			DailySlots: []reqdto.DailySlotRequest{
				{StartTime: "09:00", EndTime: "11:00"},
				{StartTime: "17:00", EndTime: "19:00", MaxOrders: ptr.Of(8)},
			},
		})

		s.Require().NoError(err)
		s.Len(views, 6)
		s.Len(stored, 6)
		s.Equal(20, views[0].MaxOrders)
		s.Equal(2, views[0].BufferCapacity)
		s.Equal(5, views[0].CutoffHours)
		s.Equal(8, views[1].MaxOrders)
	})

	s.Run("error: end before start", func() {
		s.SetupTest()

		_, err := s.commands.Generate(ctx, reqdto.GenerateSlotsRequest{
			StartDate:  "2026-03-13",
			EndDate:    "2026-03-11",
			DailySlots: []reqdto.DailySlotRequest{{StartTime: "09:00", EndTime: "11:00"}},
		})

		s.True(errs.Is(err, errs.ErrValidationFailed))
	})
}
