package errors

import (
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Violation reasons have no slot in BadRequest, so they travel in
// ErrorInfo metadata under this prefix.
const violationReasonPrefix = "_errors.violation_reason."

// ToGRPC renders e as a status error with ErrorInfo and, for
// InvalidArgument with violations, BadRequest details.
func (e ErrorResponse) ToGRPC() error {
	st := status.New(e.Code, e.Message)

	if ei := e.errorInfo(); ei != nil {
		if st2, err := st.WithDetails(ei); err == nil {
			st = st2
		}
	}
	if br := e.badRequest(); br != nil {
		if st2, err := st.WithDetails(br); err == nil {
			st = st2
		}
	}
	return st.Err()
}

func (e ErrorResponse) errorInfo() *errdetails.ErrorInfo {
	metadata := cloneDetails(e.Details)
	for _, v := range e.Violations {
		if v.Field == "" || v.Reason == "" {
			continue
		}
		if metadata == nil {
			metadata = map[string]string{}
		}
		metadata[violationReasonPrefix+v.Field] = v.Reason
	}
	if e.Reason == "" && e.Domain == "" && len(metadata) == 0 {
		return nil
	}
	return &errdetails.ErrorInfo{Reason: string(e.Reason), Domain: e.Domain, Metadata: metadata}
}

func (e ErrorResponse) badRequest() *errdetails.BadRequest {
	if len(e.Violations) == 0 || e.Code != codes.InvalidArgument {
		return nil
	}
	br := &errdetails.BadRequest{
		FieldViolations: make([]*errdetails.BadRequest_FieldViolation, 0, len(e.Violations)),
	}
	for _, v := range e.Violations {
		desc := v.Description
		if desc == "" {
			desc = v.Reason
		}
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       v.Field,
			Description: desc,
		})
	}
	return br
}

// FromGRPC reverses ToGRPC. Errors without a status become Unknown.
func FromGRPC(err error) ErrorResponse {
	st, ok := status.FromError(err)
	if !ok {
		return Unknown()
	}

	out := New(st.Message(), st.Code(), nil)
	reasons := map[string]string{}
	var br *errdetails.BadRequest

	for _, d := range st.Details() {
		switch x := d.(type) {
		case *errdetails.ErrorInfo:
			if x.GetReason() != "" {
				out.Reason = Reason(x.GetReason())
			}
			out.Domain = x.GetDomain()
			details := map[string]string{}
			for k, v := range x.GetMetadata() {
				if field, found := strings.CutPrefix(k, violationReasonPrefix); found {
					if field != "" {
						reasons[field] = v
					}
					continue
				}
				details[k] = v
			}
			out = out.WithDetails(details)
		case *errdetails.BadRequest:
			br = x
		}
	}

	if br != nil && len(br.GetFieldViolations()) > 0 {
		vs := make([]FieldViolation, 0, len(br.GetFieldViolations()))
		for _, fv := range br.GetFieldViolations() {
			vs = append(vs, FieldViolation{
				Field:       fv.GetField(),
				Reason:      reasons[fv.GetField()],
				Description: fv.GetDescription(),
			})
		}
		out.Violations = vs
	}
	return out
}
