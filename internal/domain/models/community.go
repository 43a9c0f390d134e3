package models

import "time"

// Alert is a user-registered threshold watch on the rate.
// Triggered is reserved: nothing evaluates alerts against live rates yet.
type Alert struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	TargetRate float64   `json:"targetRate"`
	IsAbove    bool      `json:"isAbove"`
	Created    time.Time `json:"created"`
	Triggered  bool      `json:"triggered"`
}

// VoteLabel is one of the three poll answers.
type VoteLabel string

const (
	VoteYes     VoteLabel = "yes"
	VoteNeutral VoteLabel = "neutral"
	VoteNo      VoteLabel = "no"
)

// VoteLabels lists the labels in summary order.
var VoteLabels = []VoteLabel{VoteYes, VoteNeutral, VoteNo}

type Vote struct {
	ID      int64     `json:"id"`
	Vote    VoteLabel `json:"vote"`
	Created time.Time `json:"created"`
}

type PollBucket struct {
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}

type PollSummary struct {
	Yes     PollBucket `json:"yes"`
	Neutral PollBucket `json:"neutral"`
	No      PollBucket `json:"no"`
	Total   int        `json:"total"`
}
