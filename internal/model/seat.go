package model

// SeatStatus is the mock availability state shown on the floor map.  The
// map is decorative: no inventory is reserved against it and the statuses
// are static.
type SeatStatus string

const (
	SeatAvailable   SeatStatus = "AVAILABLE"
	SeatOccupied    SeatStatus = "OCCUPIED"
	SeatMaintenance SeatStatus = "MAINTENANCE"
)

// Seat is one station on the cafe floor map.  TierID links the seat to
// the tier that would be billed if a customer asks for it by name.
type Seat struct {
	ID     string       `json:"id"`
	Label  string       `json:"label"`
	Kind   PlatformKind `json:"kind"`
	TierID string       `json:"tier_id"`
	Status SeatStatus   `json:"status"`
}

// Seats is the static floor layout: a PC arena of twelve stations and a
// console lounge of three.
var Seats = []Seat{
	{ID: "PC-01", Label: "VIP-1", Kind: PlatformPC, TierID: "high", Status: SeatAvailable},
	{ID: "PC-02", Label: "VIP-2", Kind: PlatformPC, TierID: "high", Status: SeatOccupied},
	{ID: "PC-03", Label: "VIP-3", Kind: PlatformPC, TierID: "high", Status: SeatAvailable},
	{ID: "PC-04", Label: "VIP-4", Kind: PlatformPC, TierID: "high", Status: SeatAvailable},
	{ID: "PC-05", Label: "STD-1", Kind: PlatformPC, TierID: "mid", Status: SeatAvailable},
	{ID: "PC-06", Label: "STD-2", Kind: PlatformPC, TierID: "mid", Status: SeatAvailable},
	{ID: "PC-07", Label: "STD-3", Kind: PlatformPC, TierID: "mid", Status: SeatAvailable},
	{ID: "PC-08", Label: "STD-4", Kind: PlatformPC, TierID: "mid", Status: SeatMaintenance},
	{ID: "PC-09", Label: "STD-5", Kind: PlatformPC, TierID: "mid", Status: SeatAvailable},
	{ID: "PC-10", Label: "STD-6", Kind: PlatformPC, TierID: "mid", Status: SeatOccupied},
	{ID: "PC-11", Label: "STD-7", Kind: PlatformPC, TierID: "mid", Status: SeatAvailable},
	{ID: "PC-12", Label: "STD-8", Kind: PlatformPC, TierID: "mid", Status: SeatAvailable},
	{ID: "PS-01", Label: "PS5-A", Kind: PlatformConsole, TierID: "ps4", Status: SeatAvailable},
	{ID: "PS-02", Label: "PS5-B", Kind: PlatformConsole, TierID: "ps4", Status: SeatOccupied},
	{ID: "PS-03", Label: "PS5-C", Kind: PlatformConsole, TierID: "ps4", Status: SeatAvailable},
}
