// Package errors provides structured error types for deployment primitives.
//
// Every failure that a caller must handle before continuing a deployment is
// reported as a *StructuredError carrying an ErrorCode, so callers can branch
// on the failure class without string matching:
//
//	if err := quantity.ValidateResourceLimits("500m", "250m", "", ""); err != nil {
//	    if errors.HasCode(err, errors.ErrCodeInvalidResourceSpec) {
//	        // reject the deployment request
//	    }
//	}
//
// Errors wrap their cause, so errors.Is and errors.As from the standard
// library keep working across the chain (for example apierrors.IsAlreadyExists
// on a provisioning failure).
package errors
