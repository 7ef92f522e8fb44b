package domain

import "github.com/shopspring/decimal"

// CategoryBudget is the per-category budget usage row of the budget rollup.
type CategoryBudget struct {
	Category    string          `json:"category"`
	Allocated   decimal.Decimal `json:"allocated"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`   // Allocated - Spent, negative on overspend
	PercentUsed int64           `json:"percentUsed"` // round(Spent/Allocated*100), 0 when Allocated is 0
}

// BudgetSummary aggregates all expenses of a project against the allocation
// table. Categories holds only rows with a non-zero allocation or spend;
// the totals cover every category.
type BudgetSummary struct {
	Categories     []CategoryBudget             `json:"categories"`
	TotalAllocated decimal.Decimal              `json:"totalAllocated"`
	TotalSpent     decimal.Decimal              `json:"totalSpent"`
	TotalRemaining decimal.Decimal              `json:"totalRemaining"`
	NeedsWants     map[Priority]decimal.Decimal `json:"needsWants"`
}

// SavingsIfSkipped is the discretionary part of the needs/wants split.
func (b BudgetSummary) SavingsIfSkipped() decimal.Decimal {
	return b.NeedsWants[PriorityNiceToHave].Add(b.NeedsWants[PriorityCanSkip])
}

// PhaseCost is the per-phase cost rollup over a project's tasks.
type PhaseCost struct {
	Estimated decimal.Decimal `json:"estimated"`
	Actual    decimal.Decimal `json:"actual"`
}

// PhaseSummary is the derived state of the 15-phase pipeline. Statuses and
// Costs are keyed by phase name; phases without tasks default to Not Started
// and carry no cost entry.
type PhaseSummary struct {
	Statuses       map[string]TaskStatus `json:"statuses"`
	Blocked        map[string]bool       `json:"blocked"`
	CurrentPhase   string                `json:"currentPhase"` // Empty when every phase is Completed
	CompletedCount int                   `json:"completedCount"`
	Costs          map[string]PhaseCost  `json:"costs"`
}

// UpcomingPayment is one unpaid EMI installment in the payment queue.
type UpcomingPayment struct {
	Vendor    string          `json:"vendor"`
	OrderID   string          `json:"orderID"`
	Month     int             `json:"month"`
	DueDate   string          `json:"dueDate"`
	Amount    decimal.Decimal `json:"amount"`
	IsOverdue bool            `json:"isOverdue"`
}

// OrderBar carries the payment progress of a single order.
type OrderBar struct {
	Vendor      string          `json:"vendor"`
	OrderID     string          `json:"orderID"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	AmountPaid  decimal.Decimal `json:"amountPaid"`
}

// PaidPercent returns the paid ratio as a percentage. It is deliberately
// not clamped to [0,100]: overpayment shows as >100 and display clamping is
// the caller's concern. A zero-total order reports 0.
func (o OrderBar) PaidPercent() decimal.Decimal {
	if o.TotalAmount.IsZero() {
		return decimal.Zero
	}
	return o.AmountPaid.Div(o.TotalAmount).Mul(decimal.NewFromInt(100))
}

// CashflowSummary aggregates a project's orders into outstanding balances,
// monthly EMI load and the upcoming-payment queue (overdue first, then by
// due date).
type CashflowSummary struct {
	TotalOrdersValue decimal.Decimal   `json:"totalOrdersValue"`
	TotalPaid        decimal.Decimal   `json:"totalPaid"`
	Outstanding      decimal.Decimal   `json:"outstanding"`
	MonthlyEMI       decimal.Decimal   `json:"monthlyEmi"`
	UpcomingPayments []UpcomingPayment `json:"upcomingPayments"`
	OrderBars        []OrderBar        `json:"orderBars"`
}

// AlertType classifies a dashboard alert.
type AlertType string

const (
	AlertError   AlertType = "error"
	AlertWarning AlertType = "warning"
	AlertInfo    AlertType = "info"
)

// Alert is a single actionable dashboard notice. Alerts are derived output:
// they are regenerated on every recompute and never persisted. Amount
// carries the raw figure behind the message (e.g. the overage) so callers
// can format it themselves.
type Alert struct {
	ID      string          `json:"id"`
	Type    AlertType       `json:"type"`
	Message string          `json:"message"`
	Amount  decimal.Decimal `json:"amount,omitempty"`
}

// ActivityType tags an entry in the recent-activity feed.
type ActivityType string

const (
	ActivityExpense ActivityType = "expense"
	ActivityOrder   ActivityType = "order"
)

// ActivityItem is one entry in the unified recent-activity feed.
type ActivityItem struct {
	ID            string          `json:"id"`
	Type          ActivityType    `json:"type"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Status        string          `json:"status"`
	SecondaryInfo string          `json:"secondaryInfo"`
}

// RoomSpend is the per-room expense rollup.
type RoomSpend struct {
	Room       string          `json:"room"`
	ItemCount  int             `json:"itemCount"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
}

// DashboardSummary is the composed output of all aggregators over one
// immutable snapshot of a project's records.
type DashboardSummary struct {
	Budget         BudgetSummary   `json:"budget"`
	Phases         PhaseSummary    `json:"phases"`
	Cashflow       CashflowSummary `json:"cashflow"`
	Alerts         []Alert         `json:"alerts"`
	RecentActivity []ActivityItem  `json:"recentActivity"`
	RoomSpends     []RoomSpend     `json:"roomSpends"`
}
