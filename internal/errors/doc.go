// Package errors provides the structured error type shared by every layer of the
// skill tree service.
//
// Errors carry a Code, a user facing Message, an optional Cause and free-form
// metadata. The codes map onto the failure classes of the progression engine:
//
//   - InvalidArgument: a malformed catalog definition or request (non-positive
//     cost, unknown stat, dangling node reference). Raised at load time.
//   - FailedPrecondition: a protocol violation such as learning a maxed node or
//     resolving a per-class pool without a class.
//   - DataLoss: persisted progression that no longer matches the catalog, or a
//     requirement tag that no decoder knows. Never swallowed.
//   - NotFound / AlreadyExists: repository lookups.
//
// # Basic Usage
//
//	err := errors.InvalidArgumentf("cost must be positive, got %d", price)
//	err := errors.DataLoss("unknown requirement type").WithMeta("type", tag)
//
// Wrapping keeps the original code:
//
//	if err := req.Use(l, tree); err != nil {
//	    return errors.Wrapf(err, "failed to commit %s", req.Type())
//	}
//
// Configuration checks accumulate with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("key", def.Key, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Handlers convert with ToGRPCError; clients convert back with FromGRPCError.
package errors
