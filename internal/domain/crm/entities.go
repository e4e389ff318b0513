package crm

import "time"

type CustomerStatus string

const (
	CustomerStatusLead     CustomerStatus = "LEAD"
	CustomerStatusProspect CustomerStatus = "PROSPECT"
	CustomerStatusCustomer CustomerStatus = "CUSTOMER"
	CustomerStatusChurned  CustomerStatus = "CHURNED"
)

type DealStage string

const (
	DealStageLead        DealStage = "LEAD"
	DealStageContacted   DealStage = "CONTACTED"
	DealStageQualified   DealStage = "QUALIFIED"
	DealStageProposal    DealStage = "PROPOSAL"
	DealStageNegotiation DealStage = "NEGOTIATION"
	DealStageClosedWon   DealStage = "CLOSED_WON"
	DealStageClosedLost  DealStage = "CLOSED_LOST"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

type PackageTier string

const (
	PackageBasic    PackageTier = "BASIC"
	PackageStandard PackageTier = "STANDARD"
	PackagePremium  PackageTier = "PREMIUM"
	PackageAny      PackageTier = "ANY"
)

type ActivityType string

const (
	ActivityEmail   ActivityType = "EMAIL"
	ActivityCall    ActivityType = "CALL"
	ActivityMeeting ActivityType = "MEETING"
	ActivityNote    ActivityType = "NOTE"
	ActivitySystem  ActivityType = "SYSTEM"
	ActivitySDRFind ActivityType = "SDR_FIND"
)

type BatchStatus string

const (
	BatchPendingReview BatchStatus = "PENDING_REVIEW"
	BatchApproved      BatchStatus = "APPROVED"
	BatchDiscarded     BatchStatus = "DISCARDED"
)

type LeadStatus string

const (
	LeadCandidate LeadStatus = "CANDIDATE"
	LeadApproved  LeadStatus = "APPROVED"
	LeadRejected  LeadStatus = "REJECTED"
)

// Terminal reports whether the review state machine allows no further
// transitions from this status.
func (s LeadStatus) Terminal() bool {
	return s == LeadApproved || s == LeadRejected
}

// Customer is a durable CRM party, either promoted from an SDR lead or
// entered directly.
type Customer struct {
	ID string `json:"id" yaml:"id"`

	CompanyName      string `json:"companyName" yaml:"companyName"`
	ContactFirstName string `json:"contactFirstName,omitempty" yaml:"contactFirstName,omitempty"`
	ContactLastName  string `json:"contactLastName,omitempty" yaml:"contactLastName,omitempty"`
	Email            string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone            string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Website          string `json:"website,omitempty" yaml:"website,omitempty"`
	Address          string `json:"address,omitempty" yaml:"address,omitempty"`

	Category string         `json:"category" yaml:"category"`
	Status   CustomerStatus `json:"status" yaml:"status"`
	Tags     []string       `json:"tags" yaml:"tags"`

	Rating          float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
	ReviewCount     int     `json:"reviewCount,omitempty" yaml:"reviewCount,omitempty"`
	DigitalGapScore int     `json:"digitalGapScore" yaml:"digitalGapScore"`
	ICPFitScore     int     `json:"icpFitScore" yaml:"icpFitScore"`

	PainPoints           []string `json:"painPoints,omitempty" yaml:"painPoints,omitempty"`
	SalesOpportunities   []string `json:"salesOpportunities,omitempty" yaml:"salesOpportunities,omitempty"`
	QualificationSummary string   `json:"qualificationSummary,omitempty" yaml:"qualificationSummary,omitempty"`

	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

type Deal struct {
	ID         string `json:"id" yaml:"id"`
	CustomerID string `json:"customerId" yaml:"customerId"`
	Name       string `json:"name" yaml:"name"`

	Value float64   `json:"value" yaml:"value"`
	Stage DealStage `json:"stage" yaml:"stage"`

	NextAction     string     `json:"nextAction,omitempty" yaml:"nextAction,omitempty"`
	NextActionDate *time.Time `json:"nextActionDate,omitempty" yaml:"nextActionDate,omitempty"`
	LastTouchDate  *time.Time `json:"lastTouchDate,omitempty" yaml:"lastTouchDate,omitempty"`

	Priority   Priority    `json:"priority" yaml:"priority"`
	PackageFit PackageTier `json:"packageFit" yaml:"packageFit"`
	MQLScore   int         `json:"mqlScore" yaml:"mqlScore"`
}

type Task struct {
	ID         string `json:"id" yaml:"id"`
	DealID     string `json:"dealId,omitempty" yaml:"dealId,omitempty"`
	CustomerID string `json:"customerId,omitempty" yaml:"customerId,omitempty"`

	Title          string    `json:"title" yaml:"title"`
	DueDate        time.Time `json:"dueDate" yaml:"dueDate"`
	Priority       Priority  `json:"priority" yaml:"priority"`
	Status         string    `json:"status" yaml:"status"` // PENDING | DONE
	AgentGenerated bool      `json:"agentGenerated" yaml:"agentGenerated"`
}

// Activity is an append-only timeline entry. Activities are never mutated
// or deleted after creation; they form the audit trail for promotions and
// subsequent interactions.
type Activity struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId,omitempty"`
	DealID     string `json:"dealId,omitempty"`

	Type      ActivityType `json:"type"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Timestamp time.Time    `json:"timestamp"`
}

// ICPProfile is a named targeting spec describing who the SDR process
// should prospect.
type ICPProfile struct {
	ID            string      `json:"id" yaml:"id"`
	Name          string      `json:"name" yaml:"name"`
	Geography     string      `json:"geography" yaml:"geography"`
	Categories    []string    `json:"categories" yaml:"categories"`
	TargetPackage PackageTier `json:"targetPackage" yaml:"targetPackage"`
	Active        bool        `json:"active" yaml:"active"`
	LastRun       *time.Time  `json:"lastRun,omitempty" yaml:"lastRun,omitempty"`
}

// SDRBatch records one generation run. ApprovedLeads/RejectedLeads are
// informational snapshots; authoritative counts are derived from lead
// statuses at read time (see store.BatchStats).
type SDRBatch struct {
	ID           string `json:"id" yaml:"id"`
	ICPProfileID string `json:"icpProfileId" yaml:"icpProfileId"`
	Name         string `json:"name" yaml:"name"`

	Status  BatchStatus `json:"status" yaml:"status"`
	RunDate time.Time   `json:"runDate" yaml:"runDate"`

	TotalCandidates int `json:"totalCandidates" yaml:"totalCandidates"`
	ApprovedLeads   int `json:"approvedLeads" yaml:"approvedLeads"`
	RejectedLeads   int `json:"rejectedLeads" yaml:"rejectedLeads"`
}

// SDRLead is one unverified prospect candidate awaiting human review.
// Invariant: CustomerID is set if and only if Status == APPROVED.
type SDRLead struct {
	ID      string `json:"id" yaml:"id"`
	BatchID string `json:"batchId" yaml:"batchId"`

	CompanyName string  `json:"companyName" yaml:"companyName"`
	Category    string  `json:"category" yaml:"category"`
	Rating      float64 `json:"rating" yaml:"rating"`
	Reviews     int     `json:"reviews" yaml:"reviews"`
	Address     string  `json:"address,omitempty" yaml:"address,omitempty"`
	Website     string  `json:"website,omitempty" yaml:"website,omitempty"`
	Phone       string  `json:"phone,omitempty" yaml:"phone,omitempty"`
	MapsURL     string  `json:"mapsUrl,omitempty" yaml:"mapsUrl,omitempty"`

	Status     LeadStatus `json:"status" yaml:"status"`
	Tier       Tier       `json:"tier" yaml:"tier"`
	MatchScore int        `json:"matchScore" yaml:"matchScore"`

	QualificationSummary string   `json:"qualificationSummary" yaml:"qualificationSummary"`
	TalkingPoints        []string `json:"talkingPoints" yaml:"talkingPoints"`

	CustomerID string `json:"customerId,omitempty" yaml:"customerId,omitempty"`
}

type EmailTemplate struct {
	ID       string     `json:"id" yaml:"id"`
	Name     string     `json:"name" yaml:"name"`
	Subject  string     `json:"subject" yaml:"subject"`
	Body     string     `json:"body" yaml:"body"`
	Category string     `json:"category" yaml:"category"`
	Tags     []string   `json:"tags" yaml:"tags"`
	LastUsed *time.Time `json:"lastUsed,omitempty" yaml:"lastUsed,omitempty"`
}

type ChatRole string

const (
	ChatRoleUser   ChatRole = "user"
	ChatRoleModel  ChatRole = "model"
	ChatRoleSystem ChatRole = "system"
)

type ChatMessage struct {
	ID                 string    `json:"id"`
	Role               ChatRole  `json:"role"`
	Content            string    `json:"content"`
	Timestamp          time.Time `json:"timestamp"`
	IsFunctionResponse bool      `json:"isFunctionResponse,omitempty"`
}
