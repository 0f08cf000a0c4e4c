package console

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/bacmon/internal/models"
	"github.com/KirkDiggler/bacmon/internal/services/monitor"
	monitorMocks "github.com/KirkDiggler/bacmon/internal/services/monitor/mocks"
	"github.com/KirkDiggler/bacmon/internal/services/session"
	sessionMocks "github.com/KirkDiggler/bacmon/internal/services/session/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConsoleTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockSession *sessionMocks.MockService
	mockMonitor *monitorMocks.MockService
	out         *bytes.Buffer
	display     *Display
	console     *Console
	ctx         context.Context

	// Test data
	testTime     time.Time
	testDrinkID  string
	otherDrinkID string
}

func (s *ConsoleTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSession = sessionMocks.NewMockService(s.mockCtrl)
	s.mockMonitor = monitorMocks.NewMockService(s.mockCtrl)
	s.out = &bytes.Buffer{}
	s.display = NewDisplay(s.out)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 4, 19, 21, 30, 0, 0, time.UTC)
	s.testDrinkID = "11111111-aaaa-bbbb-cccc-000000000001"
	s.otherDrinkID = "22222222-aaaa-bbbb-cccc-000000000002"

	handler, err := New(&Config{
		SessionService: s.mockSession,
		MonitorService: s.mockMonitor,
		In:             strings.NewReader(""),
		Display:        s.display,
	})
	s.Require().NoError(err)
	s.console = handler
}

func (s *ConsoleTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestConsoleTestSuite(t *testing.T) {
	suite.Run(t, new(ConsoleTestSuite))
}

// newScriptedConsole returns a console fed the given input
func (s *ConsoleTestSuite) newScriptedConsole(script string) *Console {
	handler, err := New(&Config{
		SessionService: s.mockSession,
		MonitorService: s.mockMonitor,
		In:             strings.NewReader(script),
		Display:        s.display,
	})
	s.Require().NoError(err)
	return handler
}

// emptySession returns an idle session with no drinks
func (s *ConsoleTestSuite) emptySession() *models.Session {
	return &models.Session{
		ID: "test-session-id",
		Profile: models.BodyProfile{
			Gender:    models.GenderMale,
			WeightLbs: 160,
		},
		Food:      models.FoodEmptyStomach,
		Drinks:    []*models.Drink{},
		CreatedAt: s.testTime,
		UpdatedAt: s.testTime,
	}
}

// sessionWithDrinks returns an idle session holding two real drinks
func (s *ConsoleTestSuite) sessionWithDrinks() *models.Session {
	current := s.emptySession()
	current.Drinks = []*models.Drink{
		{ID: s.testDrinkID, VolumeOz: 12, ABVPercent: 5, AddedAt: s.testTime},
		{ID: s.otherDrinkID, VolumeOz: 1.5, ABVPercent: 40, AddedAt: s.testTime},
	}
	return current
}

func (s *ConsoleTestSuite) expectGetSession(current *models.Session) {
	s.mockSession.EXPECT().
		GetSession(s.ctx, &session.GetSessionInput{}).
		Return(&session.GetSessionOutput{Session: current}, nil)
}

func (s *ConsoleTestSuite) TestNew_Validation() {
	testCases := []struct {
		name string
		cfg  *Config
	}{
		{name: "nil config", cfg: nil},
		{name: "missing session service", cfg: &Config{MonitorService: s.mockMonitor, In: strings.NewReader(""), Display: s.display}},
		{name: "missing monitor service", cfg: &Config{SessionService: s.mockSession, In: strings.NewReader(""), Display: s.display}},
		{name: "missing input", cfg: &Config{SessionService: s.mockSession, MonitorService: s.mockMonitor, Display: s.display}},
		{name: "missing display", cfg: &Config{SessionService: s.mockSession, MonitorService: s.mockMonitor, In: strings.NewReader("")}},
	}

	for _, tc := range testCases {
		handler, err := New(tc.cfg)

		s.Error(err, tc.name)
		s.Nil(handler, tc.name)
	}
}

func (s *ConsoleTestSuite) TestRun_WelcomeAndQuit() {
	s.mockMonitor.EXPECT().
		StopMonitoring(s.ctx, &monitor.StopMonitoringInput{}).
		Return(&monitor.StopMonitoringOutput{WasActive: false}, nil)

	handler := s.newScriptedConsole("quit\n")

	// Act
	err := handler.Run(s.ctx)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Dynamic BAC Estimator")
	s.Contains(s.out.String(), "never drink and drive")
	s.Contains(s.out.String(), "Goodbye. Drink responsibly!")
}

func (s *ConsoleTestSuite) TestRun_DispatchesCommands() {
	s.expectGetSession(s.emptySession())
	s.mockMonitor.EXPECT().
		StopMonitoring(s.ctx, &monitor.StopMonitoringInput{}).
		Return(&monitor.StopMonitoringOutput{}, nil)

	handler := s.newScriptedConsole("drinks\nquit\n")

	// Act
	err := handler.Run(s.ctx)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "No drinks recorded")
}

func (s *ConsoleTestSuite) TestRun_ReportsCommandErrors() {
	s.mockMonitor.EXPECT().
		StopMonitoring(s.ctx, &monitor.StopMonitoringInput{}).
		Return(&monitor.StopMonitoringOutput{}, nil)

	handler := s.newScriptedConsole("offset abc\nquit\n")

	// Act
	err := handler.Run(s.ctx)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), `Error: invalid offset "abc"`)
}

func (s *ConsoleTestSuite) TestRun_StopsOnEOF() {
	s.mockMonitor.EXPECT().
		StopMonitoring(s.ctx, &monitor.StopMonitoringInput{}).
		Return(&monitor.StopMonitoringOutput{WasActive: true}, nil)

	handler := s.newScriptedConsole("")

	// Act
	err := handler.Run(s.ctx)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Goodbye. Drink responsibly!")
}

func (s *ConsoleTestSuite) TestAddDrink_ZeroValued() {
	s.mockSession.EXPECT().
		AddDrink(s.ctx, &session.AddDrinkInput{}).
		Return(&session.AddDrinkOutput{
			Drink: &models.Drink{ID: s.testDrinkID, AddedAt: s.testTime},
		}, nil)

	// Act
	err := s.console.dispatch(s.ctx, "add", nil)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Added drink [11111111]: 0.0 oz at 0.0% abv.")
}

func (s *ConsoleTestSuite) TestAddDrink_WithValues() {
	s.mockSession.EXPECT().
		AddDrink(s.ctx, &session.AddDrinkInput{}).
		Return(&session.AddDrinkOutput{
			Drink: &models.Drink{ID: s.testDrinkID, AddedAt: s.testTime},
		}, nil)
	s.mockSession.EXPECT().
		UpdateDrink(s.ctx, &session.UpdateDrinkInput{
			DrinkID:    s.testDrinkID,
			VolumeOz:   f64(12),
			ABVPercent: f64(5),
		}).
		Return(&session.UpdateDrinkOutput{
			Drink: &models.Drink{ID: s.testDrinkID, VolumeOz: 12, ABVPercent: 5, AddedAt: s.testTime},
		}, nil)

	// Act
	err := s.console.dispatch(s.ctx, "add", []string{"12", "5"})

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Added drink [11111111]: 12.0 oz at 5.0% abv.")
}

func (s *ConsoleTestSuite) TestAddDrink_InvalidValue() {
	// Act
	err := s.console.dispatch(s.ctx, "add", []string{"twelve", "5"})

	// Assert
	s.ErrorContains(err, `invalid volume "twelve"`)
}

func (s *ConsoleTestSuite) TestSetDrink_PartialUpdate() {
	s.expectGetSession(s.sessionWithDrinks())
	s.mockSession.EXPECT().
		UpdateDrink(s.ctx, &session.UpdateDrinkInput{
			DrinkID:    s.testDrinkID,
			ABVPercent: f64(40),
		}).
		Return(&session.UpdateDrinkOutput{
			Drink: &models.Drink{ID: s.testDrinkID, VolumeOz: 12, ABVPercent: 40, AddedAt: s.testTime},
		}, nil)

	// Act
	err := s.console.dispatch(s.ctx, "set", []string{"1111", "-", "40"})

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Updated drink [11111111]: 12.0 oz at 40.0% abv.")
}

func (s *ConsoleTestSuite) TestSetDrink_AmbiguousPrefix() {
	current := s.sessionWithDrinks()
	current.Drinks[0].ID = "aaaa-1111"
	current.Drinks[1].ID = "aaaa-2222"
	s.expectGetSession(current)

	// Act
	err := s.console.dispatch(s.ctx, "set", []string{"aaaa", "12", "-"})

	// Assert
	s.ErrorContains(err, "ambiguous")
}

func (s *ConsoleTestSuite) TestSetDrink_NothingToUpdate() {
	// Act
	err := s.console.dispatch(s.ctx, "set", []string{"1111", "-", "-"})

	// Assert
	s.ErrorContains(err, "nothing to update")
}

func (s *ConsoleTestSuite) TestSetDrink_UnknownID() {
	s.expectGetSession(s.sessionWithDrinks())
	s.mockSession.EXPECT().
		UpdateDrink(s.ctx, &session.UpdateDrinkInput{
			DrinkID:    "zzzz",
			VolumeOz:   f64(10),
			ABVPercent: f64(6),
		}).
		Return(nil, session.ErrDrinkNotFound)

	// Act
	err := s.console.dispatch(s.ctx, "set", []string{"zzzz", "10", "6"})

	// Assert
	s.ErrorIs(err, session.ErrDrinkNotFound)
}

func (s *ConsoleTestSuite) TestRemoveDrink_ByPrefix() {
	s.expectGetSession(s.sessionWithDrinks())
	s.mockSession.EXPECT().
		RemoveDrink(s.ctx, &session.RemoveDrinkInput{DrinkID: s.otherDrinkID}).
		Return(&session.RemoveDrinkOutput{Removed: true}, nil)

	// Act
	err := s.console.dispatch(s.ctx, "rm", []string{"2222"})

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Drink removed.")
}

func (s *ConsoleTestSuite) TestRemoveDrink_UnknownID() {
	s.expectGetSession(s.sessionWithDrinks())
	s.mockSession.EXPECT().
		RemoveDrink(s.ctx, &session.RemoveDrinkInput{DrinkID: "zzzz"}).
		Return(&session.RemoveDrinkOutput{Removed: false}, nil)

	// Act
	err := s.console.dispatch(s.ctx, "rm", []string{"zzzz"})

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), `No drink matches "zzzz".`)
}

func (s *ConsoleTestSuite) TestDrinks_ListsAll() {
	s.expectGetSession(s.sessionWithDrinks())

	// Act
	err := s.console.dispatch(s.ctx, "drinks", nil)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Drinks (2):")
	s.Contains(s.out.String(), "[11111111] 12.0 oz at 5.0% abv (0.60 oz alcohol)")
	s.Contains(s.out.String(), "[22222222] 1.5 oz at 40.0% abv (0.60 oz alcohol)")
	s.Contains(s.out.String(), "Total alcohol: 1.20 oz")
}

func (s *ConsoleTestSuite) TestDrinks_Empty() {
	s.expectGetSession(s.emptySession())

	// Act
	err := s.console.dispatch(s.ctx, "drinks", nil)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "No drinks recorded. Use 'add' to start adding your beverages.")
}

func (s *ConsoleTestSuite) TestProfile_Show() {
	s.expectGetSession(s.emptySession())

	// Act
	err := s.console.dispatch(s.ctx, "profile", nil)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Gender: male")
	s.Contains(s.out.String(), "Weight: 160.0 lbs")
	s.Contains(s.out.String(), "Food intake: empty_stomach")
	s.Contains(s.out.String(), "State: idle")
}

func (s *ConsoleTestSuite) TestProfile_Set() {
	updated := s.emptySession()
	updated.Profile = models.BodyProfile{Gender: models.GenderFemale, WeightLbs: 135}
	updated.Food = models.FoodLightMeal
	s.mockSession.EXPECT().
		SetProfile(s.ctx, &session.SetProfileInput{
			Gender:    models.GenderFemale,
			WeightLbs: 135,
			Food:      models.FoodLightMeal,
		}).
		Return(&session.SetProfileOutput{Session: updated}, nil)

	// Act
	err := s.console.dispatch(s.ctx, "profile", []string{"female", "135", "light"})

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Gender: female")
	s.Contains(s.out.String(), "Weight: 135.0 lbs")
	s.Contains(s.out.String(), "Food intake: light_meal")
}

func (s *ConsoleTestSuite) TestProfile_RejectedWhileMonitoring() {
	s.mockSession.EXPECT().
		SetProfile(s.ctx, gomock.Any()).
		Return(nil, session.ErrMonitoringActive)

	// Act
	err := s.console.dispatch(s.ctx, "profile", []string{"male", "180", "heavy"})

	// Assert
	s.ErrorIs(err, session.ErrMonitoringActive)
}

func (s *ConsoleTestSuite) TestOffset_Set() {
	updated := s.emptySession()
	updated.FirstDrinkOffsetHours = 1.5
	s.mockSession.EXPECT().
		SetFirstDrinkOffset(s.ctx, &session.SetFirstDrinkOffsetInput{Hours: 1.5}).
		Return(&session.SetFirstDrinkOffsetOutput{Session: updated}, nil)

	// Act
	err := s.console.dispatch(s.ctx, "offset", []string{"1.5"})

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "First drink offset set to 1.50 hours.")
}

func (s *ConsoleTestSuite) TestStart_HappyPath() {
	s.mockMonitor.EXPECT().
		StartMonitoring(s.ctx, &monitor.StartMonitoringInput{}).
		Return(&monitor.StartMonitoringOutput{Session: s.sessionWithDrinks()}, nil)

	// Act
	err := s.console.dispatch(s.ctx, "start", nil)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Monitoring started.")
}

func (s *ConsoleTestSuite) TestStart_NoDrinks() {
	s.mockMonitor.EXPECT().
		StartMonitoring(s.ctx, &monitor.StartMonitoringInput{}).
		Return(nil, session.ErrNoAlcoholRecorded)
	s.mockMonitor.EXPECT().
		Snapshot(s.ctx, &monitor.SnapshotInput{}).
		Return(&monitor.SnapshotOutput{HasDrinks: false, HasAlcohol: false}, nil)

	// Act
	err := s.console.dispatch(s.ctx, "start", nil)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Add drinks to enable BAC monitoring.")
}

func (s *ConsoleTestSuite) TestStart_ZeroValuedDrinks() {
	s.mockMonitor.EXPECT().
		StartMonitoring(s.ctx, &monitor.StartMonitoringInput{}).
		Return(nil, session.ErrNoAlcoholRecorded)
	s.mockMonitor.EXPECT().
		Snapshot(s.ctx, &monitor.SnapshotInput{}).
		Return(&monitor.SnapshotOutput{HasDrinks: true, HasAlcohol: false}, nil)

	// Act
	err := s.console.dispatch(s.ctx, "start", nil)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Please ensure all drinks have a valid volume and ABV to calculate BAC.")
}

func (s *ConsoleTestSuite) TestStart_AlreadyActive() {
	s.mockMonitor.EXPECT().
		StartMonitoring(s.ctx, &monitor.StartMonitoringInput{}).
		Return(nil, session.ErrMonitoringActive)

	// Act
	err := s.console.dispatch(s.ctx, "start", nil)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Monitoring is already active.")
}

func (s *ConsoleTestSuite) TestStop_WasActive() {
	s.mockMonitor.EXPECT().
		StopMonitoring(s.ctx, &monitor.StopMonitoringInput{}).
		Return(&monitor.StopMonitoringOutput{WasActive: true}, nil)

	// Act
	err := s.console.dispatch(s.ctx, "stop", nil)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Monitoring stopped.")
}

func (s *ConsoleTestSuite) TestStop_WhenIdle() {
	s.mockMonitor.EXPECT().
		StopMonitoring(s.ctx, &monitor.StopMonitoringInput{}).
		Return(&monitor.StopMonitoringOutput{WasActive: false}, nil)

	// Act
	err := s.console.dispatch(s.ctx, "stop", nil)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Monitoring is not active.")
}

func (s *ConsoleTestSuite) TestStatus_InitialEstimate() {
	s.mockMonitor.EXPECT().
		Snapshot(s.ctx, &monitor.SnapshotInput{}).
		Return(&monitor.SnapshotOutput{
			Reading: &models.Reading{
				BAC:          0.045,
				ElapsedHours: 0.5,
				Minutes:      30,
				Status: models.Status{
					Severity: models.SeverityInfo,
					Message:  "Some effects present - Drink responsibly.",
					Icon:     "✅",
				},
				At: s.testTime,
			},
			HasDrinks:  true,
			HasAlcohol: true,
		}, nil)

	// Act
	err := s.console.dispatch(s.ctx, "status", nil)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Initial Estimated BAC: 0.045%")
	s.Contains(s.out.String(), "Some effects present - Drink responsibly.")
	s.NotContains(s.out.String(), "Total time elapsed")
}

func (s *ConsoleTestSuite) TestStatus_WhileMonitoring() {
	s.mockMonitor.EXPECT().
		Snapshot(s.ctx, &monitor.SnapshotInput{}).
		Return(&monitor.SnapshotOutput{
			Reading: &models.Reading{
				BAC:          0.092,
				ElapsedHours: 1.5,
				Hours:        1,
				Minutes:      30,
				Status: models.Status{
					Severity: models.SeverityDanger,
					Message:  "Legal Limit Exceeded - DO NOT DRIVE!",
					Icon:     "🚨",
				},
				Monitoring: true,
				At:         s.testTime,
			},
			HasDrinks:  true,
			HasAlcohol: true,
		}, nil)

	// Act
	err := s.console.dispatch(s.ctx, "status", nil)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Current Estimated BAC: 0.092%")
	s.Contains(s.out.String(), "Total time elapsed since first drink: 1h 30m 0s")
	s.Contains(s.out.String(), "of ~0.20% max")
	s.Contains(s.out.String(), "Legal Limit Exceeded - DO NOT DRIVE!")
}

func (s *ConsoleTestSuite) TestStatus_NoDrinks() {
	s.mockMonitor.EXPECT().
		Snapshot(s.ctx, &monitor.SnapshotInput{}).
		Return(&monitor.SnapshotOutput{HasDrinks: false, HasAlcohol: false}, nil)

	// Act
	err := s.console.dispatch(s.ctx, "status", nil)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Add drinks to enable BAC monitoring.")
}

func (s *ConsoleTestSuite) TestStatus_ZeroValuedDrinks() {
	s.mockMonitor.EXPECT().
		Snapshot(s.ctx, &monitor.SnapshotInput{}).
		Return(&monitor.SnapshotOutput{HasDrinks: true, HasAlcohol: false}, nil)

	// Act
	err := s.console.dispatch(s.ctx, "status", nil)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Please ensure all drinks have a valid volume and ABV to calculate BAC.")
}

func (s *ConsoleTestSuite) TestReset_InstallsFreshSession() {
	s.mockMonitor.EXPECT().
		StopMonitoring(s.ctx, &monitor.StopMonitoringInput{}).
		Return(&monitor.StopMonitoringOutput{WasActive: true}, nil)
	s.mockSession.EXPECT().
		CreateSession(s.ctx, &session.CreateSessionInput{}).
		Return(&session.CreateSessionOutput{Session: s.emptySession()}, nil)

	// Act
	err := s.console.dispatch(s.ctx, "reset", nil)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Session reset.")
	s.Contains(s.out.String(), "Gender: male")
}

func (s *ConsoleTestSuite) TestPublish_RendersLiveReading() {
	reading := &models.Reading{
		BAC:          0.051,
		ElapsedHours: 2.2583333333333333,
		Hours:        2,
		Minutes:      15,
		Seconds:      30,
		Status: models.Status{
			Severity: models.SeverityWarning,
			Message:  "Impaired - Avoid risky activities!",
			Icon:     "⚠️",
		},
		Monitoring: true,
		At:         s.testTime,
	}

	// Act
	err := s.display.Publish(s.ctx, reading)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), "Current Estimated BAC: 0.051%")
	s.Contains(s.out.String(), "Total time elapsed since first drink: 2h 15m 30s")
	s.Contains(s.out.String(), "Impaired - Avoid risky activities!")
}

func (s *ConsoleTestSuite) TestDispatch_UnknownCommand() {
	// Act
	err := s.console.dispatch(s.ctx, "dance", nil)

	// Assert
	s.NoError(err)
	s.Contains(s.out.String(), `Unknown command "dance".`)
}

func f64(value float64) *float64 {
	return &value
}

func TestShortID(t *testing.T) {
	testCases := []struct {
		id   string
		want string
	}{
		{id: "11111111-aaaa-bbbb-cccc-000000000001", want: "11111111"},
		{id: "short", want: "short"},
		{id: "", want: ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, shortID(tc.id))
	}
}

func TestRenderGauge(t *testing.T) {
	testCases := []struct {
		name   string
		bac    float64
		filled int
	}{
		{name: "sober", bac: 0.0, filled: 0},
		{name: "half scale", bac: 0.10, filled: 12},
		{name: "full scale", bac: 0.20, filled: 24},
		{name: "clamped above max", bac: 0.30, filled: 24},
	}

	for _, tc := range testCases {
		want := fmt.Sprintf("[%s%s] %.3f%% of ~0.20%% max",
			strings.Repeat("█", tc.filled),
			strings.Repeat("░", gaugeWidth-tc.filled),
			tc.bac)
		assert.Equal(t, want, renderGauge(tc.bac), tc.name)
	}
}
