package response

import (
	"time"

	"fundilink/internal/domain/entities"
	"fundilink/internal/usecase"
)

// IssuedCodeResponse carries the plaintext exactly once; the code is
// never readable again after this response.
type IssuedCodeResponse struct {
	OK        bool      `json:"ok"`
	JobID     string    `json:"job_id"`
	Role      string    `json:"role"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromIssuedCode(ic usecase.IssuedCode, role string) IssuedCodeResponse {
	return IssuedCodeResponse{
		OK:        true,
		JobID:     ic.JobID,
		Role:      role,
		Code:      ic.Code,
		ExpiresAt: ic.ExpiresAt,
	}
}

type VerifyCodeResponse struct {
	OK           bool        `json:"ok"`
	Job          JobResponse `json:"job"`
	JobStartTime string      `json:"job_start_time,omitempty"`
	JobEndTime   string      `json:"job_end_time,omitempty"`
}

func FromVerifiedJob(j entities.Job) VerifyCodeResponse {
	return VerifyCodeResponse{
		OK:           true,
		Job:          FromJob(j),
		JobStartTime: timeOrEmpty(j.JobStartTime),
		JobEndTime:   timeOrEmpty(j.JobEndTime),
	}
}
