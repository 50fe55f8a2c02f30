// Package errors provides coded errors for the rpg-sheets service.
//
// Every layer returns *Error values (or wraps them) so the transport can map
// them onto gRPC status codes without string matching.
//
// # Codes used by the sheet domain
//
//   - NotFound: entity missing OR owned by someone else. The two cases are
//     deliberately indistinguishable to callers.
//   - InvalidArgument: validation failures, built with ValidationBuilder.
//   - AlreadyExists: duplicate username at registration.
//   - Unauthenticated: bad credentials or a missing/expired session.
//   - PermissionDenied: a non-admin calling an admin operation.
//   - FailedPrecondition: an admin trying to demote or delete themselves.
//   - Internal: storage failures.
//
// # Usage
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", id)
//
//	if err := repo.Update(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to update item")
//	}
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// Handlers call ToGRPCError on the way out.
package errors
