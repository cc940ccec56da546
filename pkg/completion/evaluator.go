package completion

import "sort"

// Evaluate computes the completion report for a candidate's document set.
// A required type is satisfied when its latest record (by UploadedAt) is
// uploaded or approved. Bare "pending" records and rejected records do not
// satisfy. Status tallies cover every record, optional types included, but
// only required types drive IsComplete.
//
// Pure function: no I/O, no hidden state, deterministic for equal inputs.
func Evaluate(types []RequiredDocumentType, records []DocumentRecord) Summary {
	summary := Summary{
		MissingDocumentCodes: make([]string, 0),
	}

	for _, rec := range records {
		switch rec.Status {
		case StatusUploaded:
			summary.TotalUploaded++
		case StatusApproved:
			summary.TotalApproved++
		case StatusRejected:
			summary.TotalRejected++
		case StatusPending:
			summary.TotalPending++
		}
	}

	latest := latestByType(records)

	required := make([]RequiredDocumentType, 0, len(types))
	for _, t := range types {
		if t.IsRequired {
			required = append(required, t)
		}
	}
	sort.SliceStable(required, func(i, j int) bool {
		return required[i].DisplayOrder < required[j].DisplayOrder
	})

	summary.TotalRequired = len(required)

	satisfied := 0
	for _, t := range required {
		rec, ok := latest[t.Code]
		if ok && (rec.Status == StatusUploaded || rec.Status == StatusApproved) {
			satisfied++
			continue
		}
		summary.MissingDocumentCodes = append(summary.MissingDocumentCodes, t.Code)
	}

	summary.IsComplete = satisfied == summary.TotalRequired
	return summary
}

// latestByType collapses re-uploads: when multiple records share a type code
// the most recent UploadedAt wins. Records without a timestamp lose against
// any timestamped one.
func latestByType(records []DocumentRecord) map[string]DocumentRecord {
	latest := make(map[string]DocumentRecord, len(records))
	for _, rec := range records {
		current, exists := latest[rec.DocumentTypeCode]
		if !exists {
			latest[rec.DocumentTypeCode] = rec
			continue
		}
		if newer(rec, current) {
			latest[rec.DocumentTypeCode] = rec
		}
	}
	return latest
}

func newer(a, b DocumentRecord) bool {
	if a.UploadedAt == nil {
		return false
	}
	if b.UploadedAt == nil {
		return true
	}
	return a.UploadedAt.After(*b.UploadedAt)
}
