package store

// Document names in the shared database. calendarDatabase and
// financialGoals are the canonical spellings; earlier builds also wrote
// calendarData and reused goals for net-worth targets, and readers of
// old databases go through the migration instead of guessing here.
const (
	KeyFinancialData    = "financialData"    // []finance.Account
	KeyTransactions     = "transactions"     // []finance.Transaction
	KeyGoals            = "goals"            // []goal.Simple
	KeyFinancialGoals   = "financialGoals"   // []goal.Patrimonial
	KeyPomodoroSessions = "pomodoroSessions" // []focus.Session
	KeyPomodoroSettings = "pomodoroSettings" // focus.Settings
	KeyCalendarDatabase = "calendarDatabase" // map[day]planner.DayRecord

	// KeyLegacyWeeklyPlanner is the retired weekday-name map. Read only
	// by the migration.
	KeyLegacyWeeklyPlanner = "weeklyPlannerData"
)
