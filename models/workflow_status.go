package models

// ProfileStatus is the verification lifecycle of a student profile
type ProfileStatus string

const (
	ProfileStatusPending  ProfileStatus = "PENDING"
	ProfileStatusVerified ProfileStatus = "VERIFIED"
	ProfileStatusHold     ProfileStatus = "HOLD"
	ProfileStatusRejected ProfileStatus = "REJECTED"
)

// AllowVerify re-verification of a VERIFIED profile is allowed and re-applies the same state.
func (s ProfileStatus) AllowVerify() bool {
	return s == ProfileStatusPending || s == ProfileStatusHold || s == ProfileStatusVerified || s == ""
}

func (s ProfileStatus) AllowHold() bool {
	return s == ProfileStatusPending || s == ProfileStatusHold || s == ""
}

func (s ProfileStatus) AllowReject() bool {
	return s == ProfileStatusPending || s == ProfileStatusHold || s == ""
}

// VerificationBucket derived from tpo_dept_verified + profile_status, not stored
type VerificationBucket string

const (
	BucketPending  VerificationBucket = "PENDING"
	BucketVerified VerificationBucket = "VERIFIED"
	BucketRejected VerificationBucket = "REJECTED"
)

func (b VerificationBucket) IsValid() bool {
	return b == BucketPending || b == BucketVerified || b == BucketRejected
}

func GetVerificationBucket(verified bool, status ProfileStatus) VerificationBucket {
	if verified {
		return BucketVerified
	}
	if status == ProfileStatusRejected {
		return BucketRejected
	}
	return BucketPending
}

type ApplicationStatus string

const (
	ApplicationStatusSubmitted    ApplicationStatus = "SUBMITTED"
	ApplicationStatusPendingAdmin ApplicationStatus = "PENDING_ADMIN"
	ApplicationStatusForwarded    ApplicationStatus = "FORWARDED"
	ApplicationStatusHold         ApplicationStatus = "HOLD"
	ApplicationStatusRejected     ApplicationStatus = "REJECTED"
)

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusSubmitted:    {ApplicationStatusPendingAdmin, ApplicationStatusHold, ApplicationStatusRejected},
	ApplicationStatusHold:         {ApplicationStatusRejected},
	ApplicationStatusPendingAdmin: {ApplicationStatusForwarded, ApplicationStatusRejected},
	// admin appeal of a department rejection
	ApplicationStatusRejected: {ApplicationStatusPendingAdmin},
}

func (s ApplicationStatus) IsAllowChange(to ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusSubmitted, ApplicationStatusPendingAdmin, ApplicationStatusForwarded,
		ApplicationStatusHold, ApplicationStatusRejected:
		return true
	}
	return false
}

type JobPostingStatus string

const (
	JobPostingStatusPendingApproval JobPostingStatus = "PENDING_APPROVAL"
	JobPostingStatusActive          JobPostingStatus = "ACTIVE"
	JobPostingStatusRejected        JobPostingStatus = "REJECTED"
	JobPostingStatusClosed          JobPostingStatus = "CLOSED"
)

var jobPostingTransitions = map[JobPostingStatus][]JobPostingStatus{
	JobPostingStatusPendingApproval: {JobPostingStatusActive, JobPostingStatusRejected, JobPostingStatusClosed},
	JobPostingStatusActive:          {JobPostingStatusClosed},
}

func (s JobPostingStatus) IsAllowChange(to JobPostingStatus) bool {
	for _, allowed := range jobPostingTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsCriteriaLocked eligibility criteria are frozen once the posting went live
func (s JobPostingStatus) IsCriteriaLocked() bool {
	return s == JobPostingStatusActive || s == JobPostingStatusClosed
}
