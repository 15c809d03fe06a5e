package types

type EventType string

func (e EventType) String() string {
	return string(e)
}

const (
	DonationEventType EventType = "DONATION"
)

// DonationEvent is the notification emitted once per successful donation.
// It is delivered to observers through the message queue and is never part
// of the fund state.
type DonationEvent struct {
	EventType    EventType `json:"event_type"`
	InvocationID string    `json:"invocation_id"`
	Fund         string    `json:"fund"`
	Donor        string    `json:"donor"`
	Amount       uint64    `json:"amount"`
	Timestamp    int64     `json:"timestamp"`
}

func NewDonationEvent(invocationID, fund, donor string, amount uint64, timestamp int64) DonationEvent {
	return DonationEvent{
		EventType:    DonationEventType,
		InvocationID: invocationID,
		Fund:         fund,
		Donor:        donor,
		Amount:       amount,
		Timestamp:    timestamp,
	}
}

// Outbox delivery states of a donation event.
type EventStatus string

const (
	EventStatusPending   EventStatus = "PENDING"
	EventStatusPublished EventStatus = "PUBLISHED"
	EventStatusFailed    EventStatus = "FAILED"
)

func (s EventStatus) String() string {
	return string(s)
}
