package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-sheets/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "character not found",
			expected: "NOT_FOUND: character not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "name is required",
			expected: "INVALID_ARGUMENT: name is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("disk I/O error")
	wrapped := errors.Wrap(baseErr, "failed to get character")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to get character", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("item not found").WithMeta("item_id", int64(7))
	wrapped := errors.Wrapf(baseErr, "failed to toggle item %d", 7)

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("failed to toggle item 7", wrapped.Message)
	s.Equal(int64(7), wrapped.Meta["item_id"])

	// wrapping copies metadata instead of sharing the map
	wrapped.WithMeta("character_id", int64(3))
	s.NotContains(baseErr.Meta, "character_id")
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("UNIQUE constraint failed: users.username")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeAlreadyExists, "username already exists")

	s.Equal(errors.CodeAlreadyExists, wrapped.Code)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.True(errors.Is(errors.Wrap(errors.NotFound("a"), "b"), errors.NotFound("c")))
	s.False(errors.Is(errors.NotFound("a"), errors.InvalidArgument("a")))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	s.True(errors.IsNotFound(errors.Wrap(errors.NotFound("x"), "wrapped")))
	s.True(errors.IsInvalidArgument(errors.InvalidArgument("x")))
	s.True(errors.IsAlreadyExists(errors.AlreadyExists("x")))
	s.True(errors.IsPermissionDenied(errors.PermissionDenied("x")))
	s.True(errors.IsFailedPrecondition(errors.FailedPrecondition("x")))
	s.True(errors.IsUnauthenticated(errors.Unauthenticated("x")))
	s.True(errors.IsInternal(fmt.Errorf("plain")))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Equal("user facing", errors.GetMessage(errors.NotFound("user facing")))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Equal("", errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 200},
		{errors.CodeNotFound, 404},
		{errors.CodeInvalidArgument, 400},
		{errors.CodeAlreadyExists, 409},
		{errors.CodePermissionDenied, 403},
		{errors.CodeUnauthenticated, 401},
		{errors.CodeInternal, 500},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}

func (s *ErrorsTestSuite) TestToGRPCErrorCarriesMeta() {
	err := errors.NotFound("character not found").WithMeta("character_id", 42)

	st, ok := status.FromError(errors.ToGRPCError(err))
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("character not found", st.Message())

	s.Require().Len(st.Details(), 1)
	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	s.Require().True(ok)
	s.Equal("NOT_FOUND", info.GetReason())
	s.Equal("42", info.GetMetadata()["character_id"])
}

func (s *ErrorsTestSuite) TestToGRPCErrorPlainError() {
	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())
	s.Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestFromGRPCError() {
	sent := errors.ToGRPCError(errors.AlreadyExists("username already exists").WithMeta("username", "gandalf"))

	got := errors.FromGRPCError(sent)
	s.True(errors.IsAlreadyExists(got))
	s.Equal("username already exists", errors.GetMessage(got))
	s.Equal("gandalf", errors.GetMeta(got)["username"])
}
