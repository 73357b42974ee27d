package model

import (
	"fmt"
	"strings"
)

// Status is the gateway's processing state of a submitted document
type Status string

// Processing states
const (
	StatusRegistered      Status = "REGISTERED"
	StatusToSend          Status = "TO_SEND"
	StatusFailed          Status = "FAILED"
	StatusWaitingResponse Status = "WAITING_RESPONSE"
	StatusToNotify        Status = "TO_NOTIFY"
	StatusFinished        Status = "FINISHED"
)

// LegalStatus is DGII's verdict on a submitted document
type LegalStatus string

// Legal states
const (
	LegalNotFound                 LegalStatus = "NOT_FOUND"
	LegalInProcess                LegalStatus = "IN_PROCESS"
	LegalAccepted                 LegalStatus = "ACCEPTED"
	LegalAcceptedWithObservations LegalStatus = "ACCEPTED_WITH_OBSERVATIONS"
	LegalRejected                 LegalStatus = "REJECTED"
)

var statuses = []Status{
	StatusRegistered, StatusToSend, StatusFailed,
	StatusWaitingResponse, StatusToNotify, StatusFinished,
}

var legalStatuses = []LegalStatus{
	LegalNotFound, LegalInProcess, LegalAccepted,
	LegalAcceptedWithObservations, LegalRejected,
}

// ParseStatus validates a processing state name
func ParseStatus(s string) (Status, error) {
	for _, st := range statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// ParseLegalStatus validates a legal state name
func ParseLegalStatus(s string) (LegalStatus, error) {
	for _, st := range legalStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown legal status %q", s)
}

// JoinStatuses renders a status filter as the gateway expects it
func JoinStatuses(list ...Status) (string, error) {
	parts := make([]string, 0, len(list))
	for _, st := range list {
		if _, err := ParseStatus(string(st)); err != nil {
			return "", err
		}
		parts = append(parts, string(st))
	}
	return strings.Join(parts, ","), nil
}

// Terminal reports whether the gateway has stopped working on the document
func (s Status) Terminal() bool {
	return s == StatusFinished || s == StatusFailed
}

// Accepted reports whether DGII accepted the document
func (s LegalStatus) Accepted() bool {
	return s == LegalAccepted || s == LegalAcceptedWithObservations
}

// Environment selects which DGII environment is queried
type Environment int

// DGII environments, numbered as the gateway numbers them
const (
	EnvPreCertification Environment = 1
	EnvProduction       Environment = 2
	EnvCertification    Environment = 3
)

// Valid reports whether e is a known environment
func (e Environment) Valid() bool {
	return e >= EnvPreCertification && e <= EnvCertification
}

func (e Environment) String() string {
	switch e {
	case EnvPreCertification:
		return "pre-certification"
	case EnvProduction:
		return "production"
	case EnvCertification:
		return "certification"
	}
	return fmt.Sprintf("environment(%d)", int(e))
}
