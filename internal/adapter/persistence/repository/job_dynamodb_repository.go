package repository

import (
	"context"
	"errors"
	"time"

	"fundilink/internal/domain/entities"
	"fundilink/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobsTableName = "jobs"

type jobItem struct {
	ID         string `dynamodbav:"id"`
	CustomerID string `dynamodbav:"customer_id"`
	ProviderID string `dynamodbav:"provider_id"`
	Service    string `dynamodbav:"service,omitempty"`
	Status     string `dynamodbav:"status"`

	QuoteTotal       string `dynamodbav:"quote_total,omitempty"`
	QuoteLabor       string `dynamodbav:"quote_labor,omitempty"`
	QuoteMaterials   string `dynamodbav:"quote_materials,omitempty"`
	QuoteBreakdown   string `dynamodbav:"quote_breakdown,omitempty"`
	QuoteSubmittedAt string `dynamodbav:"quote_submitted_at,omitempty"`
	QuoteAccepted    bool   `dynamodbav:"quote_accepted"`
	QuoteAcceptedAt  string `dynamodbav:"quote_accepted_at,omitempty"`
	QuoteLocked      bool   `dynamodbav:"quote_locked"`

	StartCode             string `dynamodbav:"start_code,omitempty"`
	StartCodeHash         string `dynamodbav:"start_code_hash,omitempty"`
	StartCodeUsed         bool   `dynamodbav:"start_code_used"`
	StartCodeUsedAt       string `dynamodbav:"start_code_used_at,omitempty"`
	CustomerCodeExpiresAt string `dynamodbav:"customer_code_expires_at,omitempty"`
	EndCode               string `dynamodbav:"end_code,omitempty"`
	EndCodeHash           string `dynamodbav:"end_code_hash,omitempty"`
	EndCodeUsed           bool   `dynamodbav:"end_code_used"`
	EndCodeUsedAt         string `dynamodbav:"end_code_used_at,omitempty"`
	ProviderCodeExpiresAt string `dynamodbav:"provider_code_expires_at,omitempty"`
	JobStartTime          string `dynamodbav:"job_start_time,omitempty"`
	JobEndTime            string `dynamodbav:"job_end_time,omitempty"`

	PaymentAmount        string `dynamodbav:"payment_amount,omitempty"`
	PaymentTip           string `dynamodbav:"payment_tip,omitempty"`
	PaymentTotal         string `dynamodbav:"payment_total,omitempty"`
	PaymentMethod        string `dynamodbav:"payment_method,omitempty"`
	PaymentStatus        string `dynamodbav:"payment_status,omitempty"`
	PaymentReference     string `dynamodbav:"payment_reference,omitempty"`
	PaymentInitiatedAt   string `dynamodbav:"payment_initiated_at,omitempty"`
	PaymentCompletedAt   string `dynamodbav:"payment_completed_at,omitempty"`
	IsPartialPayment     bool   `dynamodbav:"is_partial_payment"`
	PartialPaymentReason string `dynamodbav:"partial_payment_reason,omitempty"`

	PlatformCommissionPercent string `dynamodbav:"platform_commission_percent,omitempty"`
	PlatformCommissionAmount  string `dynamodbav:"platform_commission_amount,omitempty"`
	ProviderPayout            string `dynamodbav:"provider_payout,omitempty"`
	ProviderPayoutStatus      string `dynamodbav:"provider_payout_status,omitempty"`

	DisputeFlagged    bool   `dynamodbav:"dispute_flagged"`
	DisputeReason     string `dynamodbav:"dispute_reason,omitempty"`
	DisputeFlaggedAt  string `dynamodbav:"dispute_flagged_at,omitempty"`
	DisputeResolved   bool   `dynamodbav:"dispute_resolved"`
	DisputeResolution string `dynamodbav:"dispute_resolution,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every invariant the use cases rely on (quote lock, hash first-write,
// single-use codes, payment completion) is enforced here with condition
// expressions, not just application checks. A failed condition comes
// back as a zero-value Job with a nil error, matching the repository
// contract.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

// LockQuote is the compare-and-set for quote submission: only the writer
// that observes quote_locked == false wins.
func (r *JobDynamoRepository) LockQuote(ctx context.Context, jobID string, q interfaces.QuoteLock) (entities.Job, error) {
	return r.update(ctx, jobID,
		"attribute_exists(#id) AND #quote_locked = :false",
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #quote_locked = :true, #quote_total = :total, #quote_labor = :labor, #quote_materials = :materials, #quote_breakdown = :breakdown, #quote_submitted_at = :submitted_at, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":true":         &types.AttributeValueMemberBOOL{Value: true},
				":false":        &types.AttributeValueMemberBOOL{Value: false},
				":total":        &types.AttributeValueMemberS{Value: floatToString(q.Total)},
				":labor":        &types.AttributeValueMemberS{Value: floatToString(q.Labor)},
				":materials":    &types.AttributeValueMemberS{Value: floatToString(q.Materials)},
				":breakdown":    &types.AttributeValueMemberS{Value: q.Breakdown},
				":submitted_at": &types.AttributeValueMemberS{Value: q.SubmittedAt.UTC().Format(time.RFC3339Nano)},
				":updated_at":   &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#quote_locked":       "quote_locked",
				"#quote_total":        "quote_total",
				"#quote_labor":        "quote_labor",
				"#quote_materials":    "quote_materials",
				"#quote_breakdown":    "quote_breakdown",
				"#quote_submitted_at": "quote_submitted_at",
				"#updated_at":         "updated_at",
			}
			return expr, vals, names
		})
}

func (r *JobDynamoRepository) SetQuoteResponse(ctx context.Context, jobID string, accepted bool, respondedAt time.Time) (entities.Job, error) {
	return r.update(ctx, jobID,
		"attribute_exists(#id) AND #quote_locked = :locked AND #quote_accepted = :not_accepted AND #status <> :cancelled",
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			vals := map[string]types.AttributeValue{
				":locked":       &types.AttributeValueMemberBOOL{Value: true},
				":not_accepted": &types.AttributeValueMemberBOOL{Value: false},
				":cancelled":    &types.AttributeValueMemberS{Value: string(entities.JobStatusCancelled)},
				":updated_at":   &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#quote_locked":   "quote_locked",
				"#quote_accepted": "quote_accepted",
				"#status":         "status",
				"#updated_at":     "updated_at",
			}

			var expr string
			if accepted {
				expr = "SET #quote_accepted = :accepted, #quote_accepted_at = :responded_at, #status = :confirmed, #updated_at = :updated_at"
				vals[":accepted"] = &types.AttributeValueMemberBOOL{Value: true}
				vals[":responded_at"] = &types.AttributeValueMemberS{Value: respondedAt.UTC().Format(time.RFC3339Nano)}
				vals[":confirmed"] = &types.AttributeValueMemberS{Value: string(entities.JobStatusConfirmed)}
				names["#quote_accepted_at"] = "quote_accepted_at"
			} else {
				expr = "SET #status = :new_status, #updated_at = :updated_at"
				vals[":new_status"] = &types.AttributeValueMemberS{Value: string(entities.JobStatusCancelled)}
			}
			return expr, vals, names
		})
}

type codeFields struct {
	code    string
	hash    string
	used    string
	usedAt  string
	expires string
}

func fieldsFor(slot interfaces.CodeSlot) codeFields {
	if slot == interfaces.CodeSlotEnd {
		return codeFields{
			code:    "end_code",
			hash:    "end_code_hash",
			used:    "end_code_used",
			usedAt:  "end_code_used_at",
			expires: "provider_code_expires_at",
		}
	}
	return codeFields{
		code:    "start_code",
		hash:    "start_code_hash",
		used:    "start_code_used",
		usedAt:  "start_code_used_at",
		expires: "customer_code_expires_at",
	}
}

// WriteCode stores a code hash, plaintext and expiry. The first-issuance
// path (overwrite false) is conditioned on no hash existing, closing the
// race between two concurrent generation requests; the regeneration path
// only requires the code to be unused.
func (r *JobDynamoRepository) WriteCode(ctx context.Context, jobID string, slot interfaces.CodeSlot, plaintext, hash string, expiresAt time.Time, overwrite bool) (entities.Job, error) {
	f := fieldsFor(slot)

	cond := "attribute_exists(#id) AND #used = :false"
	if !overwrite {
		cond += " AND (attribute_not_exists(#hash) OR #hash = :empty)"
	}

	return r.update(ctx, jobID, cond,
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #code = :code, #hash = :hash, #expires = :expires, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":false":      &types.AttributeValueMemberBOOL{Value: false},
				":code":       &types.AttributeValueMemberS{Value: plaintext},
				":hash":       &types.AttributeValueMemberS{Value: hash},
				":expires":    &types.AttributeValueMemberS{Value: expiresAt.UTC().Format(time.RFC3339Nano)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
			if !overwrite {
				vals[":empty"] = &types.AttributeValueMemberS{Value: ""}
			}
			names := map[string]string{
				"#code":       f.code,
				"#hash":       f.hash,
				"#used":       f.used,
				"#expires":    f.expires,
				"#updated_at": "updated_at",
			}
			return expr, vals, names
		})
}

func (r *JobDynamoRepository) RefreshCodeExpiry(ctx context.Context, jobID string, slot interfaces.CodeSlot, expiresAt time.Time) (entities.Job, error) {
	f := fieldsFor(slot)

	return r.update(ctx, jobID,
		"attribute_exists(#id) AND #used = :false AND attribute_exists(#hash)",
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #expires = :expires, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":false":      &types.AttributeValueMemberBOOL{Value: false},
				":expires":    &types.AttributeValueMemberS{Value: expiresAt.UTC().Format(time.RFC3339Nano)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#used":       f.used,
				"#hash":       f.hash,
				"#expires":    f.expires,
				"#updated_at": "updated_at",
			}
			return expr, vals, names
		})
}

// ConsumeCode marks a code used exactly once and advances the job. The
// status precondition lives in the condition expression so a raced
// verification cannot double-fire the transition.
func (r *JobDynamoRepository) ConsumeCode(ctx context.Context, jobID string, slot interfaces.CodeSlot, usedAt time.Time) (entities.Job, error) {
	f := fieldsFor(slot)

	if slot == interfaces.CodeSlotEnd {
		return r.update(ctx, jobID,
			"attribute_exists(#id) AND #used = :false AND #status = :in_progress",
			func(now string) (string, map[string]types.AttributeValue, map[string]string) {
				expr := "SET #used = :true, #used_at = :used_at, #status = :awaiting_payment, #job_end_time = :used_at, #updated_at = :updated_at"
				vals := map[string]types.AttributeValue{
					":false":            &types.AttributeValueMemberBOOL{Value: false},
					":true":             &types.AttributeValueMemberBOOL{Value: true},
					":used_at":          &types.AttributeValueMemberS{Value: usedAt.UTC().Format(time.RFC3339Nano)},
					":in_progress":      &types.AttributeValueMemberS{Value: string(entities.JobStatusInProgress)},
					":awaiting_payment": &types.AttributeValueMemberS{Value: string(entities.JobStatusAwaitingPayment)},
					":updated_at":       &types.AttributeValueMemberS{Value: now},
				}
				names := map[string]string{
					"#used":         f.used,
					"#used_at":      f.usedAt,
					"#status":       "status",
					"#job_end_time": "job_end_time",
					"#updated_at":   "updated_at",
				}
				return expr, vals, names
			})
	}

	return r.update(ctx, jobID,
		"attribute_exists(#id) AND #used = :false AND (#status = :pending OR #status = :confirmed)",
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #used = :true, #used_at = :used_at, #status = :in_progress, #job_start_time = :used_at, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":false":       &types.AttributeValueMemberBOOL{Value: false},
				":true":        &types.AttributeValueMemberBOOL{Value: true},
				":used_at":     &types.AttributeValueMemberS{Value: usedAt.UTC().Format(time.RFC3339Nano)},
				":pending":     &types.AttributeValueMemberS{Value: string(entities.JobStatusPending)},
				":confirmed":   &types.AttributeValueMemberS{Value: string(entities.JobStatusConfirmed)},
				":in_progress": &types.AttributeValueMemberS{Value: string(entities.JobStatusInProgress)},
				":updated_at":  &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#used":           f.used,
				"#used_at":        f.usedAt,
				"#status":         "status",
				"#job_start_time": "job_start_time",
				"#updated_at":     "updated_at",
			}
			return expr, vals, names
		})
}

func (r *JobDynamoRepository) SetPaymentInitiated(ctx context.Context, jobID string, p interfaces.PaymentInit) (entities.Job, error) {
	return r.update(ctx, jobID,
		"attribute_exists(#id) AND (attribute_not_exists(#payment_status) OR #payment_status <> :completed)",
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #payment_amount = :amount, #payment_tip = :tip, #payment_total = :total, #payment_method = :method, #payment_status = :pending, #payment_reference = :reference, #payment_initiated_at = :initiated_at, #is_partial_payment = :is_partial, #partial_payment_reason = :partial_reason, #platform_commission_percent = :commission_percent, #platform_commission_amount = :commission_amount, #provider_payout = :provider_payout, #provider_payout_status = :payout_status, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":completed":          &types.AttributeValueMemberS{Value: string(entities.PaymentStatusCompleted)},
				":amount":             &types.AttributeValueMemberS{Value: floatToString(p.Amount)},
				":tip":                &types.AttributeValueMemberS{Value: floatToString(p.Tip)},
				":total":              &types.AttributeValueMemberS{Value: floatToString(p.Total)},
				":method":             &types.AttributeValueMemberS{Value: string(p.Method)},
				":pending":            &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
				":reference":          &types.AttributeValueMemberS{Value: p.Reference},
				":initiated_at":       &types.AttributeValueMemberS{Value: p.InitiatedAt.UTC().Format(time.RFC3339Nano)},
				":is_partial":         &types.AttributeValueMemberBOOL{Value: p.IsPartial},
				":partial_reason":     &types.AttributeValueMemberS{Value: p.PartialReason},
				":commission_percent": &types.AttributeValueMemberS{Value: floatToString(p.CommissionPercent)},
				":commission_amount":  &types.AttributeValueMemberS{Value: floatToString(p.CommissionAmount)},
				":provider_payout":    &types.AttributeValueMemberS{Value: floatToString(p.ProviderPayout)},
				":payout_status":      &types.AttributeValueMemberS{Value: p.ProviderPayoutStatus},
				":updated_at":         &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#payment_amount":              "payment_amount",
				"#payment_tip":                 "payment_tip",
				"#payment_total":               "payment_total",
				"#payment_method":              "payment_method",
				"#payment_status":              "payment_status",
				"#payment_reference":           "payment_reference",
				"#payment_initiated_at":        "payment_initiated_at",
				"#is_partial_payment":          "is_partial_payment",
				"#partial_payment_reason":      "partial_payment_reason",
				"#platform_commission_percent": "platform_commission_percent",
				"#platform_commission_amount":  "platform_commission_amount",
				"#provider_payout":             "provider_payout",
				"#provider_payout_status":      "provider_payout_status",
				"#updated_at":                  "updated_at",
			}
			return expr, vals, names
		})
}

func (r *JobDynamoRepository) update(
	ctx context.Context,
	id string,
	condition string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Job, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, nil
		}
		return entities.Job{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Job{}, nil
	}
	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func toJobItem(j entities.Job) jobItem {
	return jobItem{
		ID:         j.ID,
		CustomerID: j.CustomerID,
		ProviderID: j.ProviderID,
		Service:    j.Service,
		Status:     string(j.Status),

		QuoteTotal:       floatToString(j.QuoteTotal),
		QuoteLabor:       floatToString(j.QuoteLabor),
		QuoteMaterials:   floatToString(j.QuoteMaterials),
		QuoteBreakdown:   j.QuoteBreakdown,
		QuoteSubmittedAt: timeToString(j.QuoteSubmittedAt),
		QuoteAccepted:    j.QuoteAccepted,
		QuoteAcceptedAt:  timeToString(j.QuoteAcceptedAt),
		QuoteLocked:      j.QuoteLocked,

		StartCode:             j.StartCode,
		StartCodeHash:         j.StartCodeHash,
		StartCodeUsed:         j.StartCodeUsed,
		StartCodeUsedAt:       timeToString(j.StartCodeUsedAt),
		CustomerCodeExpiresAt: timeToString(j.CustomerCodeExpiresAt),
		EndCode:               j.EndCode,
		EndCodeHash:           j.EndCodeHash,
		EndCodeUsed:           j.EndCodeUsed,
		EndCodeUsedAt:         timeToString(j.EndCodeUsedAt),
		ProviderCodeExpiresAt: timeToString(j.ProviderCodeExpiresAt),
		JobStartTime:          timeToString(j.JobStartTime),
		JobEndTime:            timeToString(j.JobEndTime),

		PaymentAmount:        floatToString(j.PaymentAmount),
		PaymentTip:           floatToString(j.PaymentTip),
		PaymentTotal:         floatToString(j.PaymentTotal),
		PaymentMethod:        string(j.PaymentMethod),
		PaymentStatus:        string(j.PaymentStatus),
		PaymentReference:     j.PaymentReference,
		PaymentInitiatedAt:   timeToString(j.PaymentInitiatedAt),
		PaymentCompletedAt:   timeToString(j.PaymentCompletedAt),
		IsPartialPayment:     j.IsPartialPayment,
		PartialPaymentReason: j.PartialPaymentReason,

		PlatformCommissionPercent: floatToString(j.PlatformCommissionPercent),
		PlatformCommissionAmount:  floatToString(j.PlatformCommissionAmount),
		ProviderPayout:            floatToString(j.ProviderPayout),
		ProviderPayoutStatus:      j.ProviderPayoutStatus,

		DisputeFlagged:    j.DisputeFlagged,
		DisputeReason:     j.DisputeReason,
		DisputeFlaggedAt:  timeToString(j.DisputeFlaggedAt),
		DisputeResolved:   j.DisputeResolved,
		DisputeResolution: j.DisputeResolution,

		CreatedAt: timeToString(j.CreatedAt),
		UpdatedAt: timeToString(j.UpdatedAt),
	}
}

func fromJobItem(it jobItem) entities.Job {
	return entities.Job{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		ProviderID: it.ProviderID,
		Service:    it.Service,
		Status:     entities.JobStatus(it.Status),

		QuoteTotal:       stringToFloat(it.QuoteTotal),
		QuoteLabor:       stringToFloat(it.QuoteLabor),
		QuoteMaterials:   stringToFloat(it.QuoteMaterials),
		QuoteBreakdown:   it.QuoteBreakdown,
		QuoteSubmittedAt: stringToTime(it.QuoteSubmittedAt),
		QuoteAccepted:    it.QuoteAccepted,
		QuoteAcceptedAt:  stringToTime(it.QuoteAcceptedAt),
		QuoteLocked:      it.QuoteLocked,

		StartCode:             it.StartCode,
		StartCodeHash:         it.StartCodeHash,
		StartCodeUsed:         it.StartCodeUsed,
		StartCodeUsedAt:       stringToTime(it.StartCodeUsedAt),
		CustomerCodeExpiresAt: stringToTime(it.CustomerCodeExpiresAt),
		EndCode:               it.EndCode,
		EndCodeHash:           it.EndCodeHash,
		EndCodeUsed:           it.EndCodeUsed,
		EndCodeUsedAt:         stringToTime(it.EndCodeUsedAt),
		ProviderCodeExpiresAt: stringToTime(it.ProviderCodeExpiresAt),
		JobStartTime:          stringToTime(it.JobStartTime),
		JobEndTime:            stringToTime(it.JobEndTime),

		PaymentAmount:        stringToFloat(it.PaymentAmount),
		PaymentTip:           stringToFloat(it.PaymentTip),
		PaymentTotal:         stringToFloat(it.PaymentTotal),
		PaymentMethod:        entities.PaymentMethod(it.PaymentMethod),
		PaymentStatus:        entities.PaymentStatus(it.PaymentStatus),
		PaymentReference:     it.PaymentReference,
		PaymentInitiatedAt:   stringToTime(it.PaymentInitiatedAt),
		PaymentCompletedAt:   stringToTime(it.PaymentCompletedAt),
		IsPartialPayment:     it.IsPartialPayment,
		PartialPaymentReason: it.PartialPaymentReason,

		PlatformCommissionPercent: stringToFloat(it.PlatformCommissionPercent),
		PlatformCommissionAmount:  stringToFloat(it.PlatformCommissionAmount),
		ProviderPayout:            stringToFloat(it.ProviderPayout),
		ProviderPayoutStatus:      it.ProviderPayoutStatus,

		DisputeFlagged:    it.DisputeFlagged,
		DisputeReason:     it.DisputeReason,
		DisputeFlaggedAt:  stringToTime(it.DisputeFlaggedAt),
		DisputeResolved:   it.DisputeResolved,
		DisputeResolution: it.DisputeResolution,

		CreatedAt: stringToTime(it.CreatedAt),
		UpdatedAt: stringToTime(it.UpdatedAt),
	}
}
