// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.9
// 	protoc        (unknown)
// source: authgate.proto

package proto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type GetRefreshTokenRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Username      string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password      string                 `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRefreshTokenRequest) Reset() {
	*x = GetRefreshTokenRequest{}
	mi := &file_authgate_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRefreshTokenRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRefreshTokenRequest) ProtoMessage() {}

func (x *GetRefreshTokenRequest) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRefreshTokenRequest.ProtoReflect.Descriptor instead.
func (*GetRefreshTokenRequest) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{0}
}

func (x *GetRefreshTokenRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *GetRefreshTokenRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

type GetRefreshTokenResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RefreshToken  string                 `protobuf:"bytes,1,opt,name=refresh_token,json=refreshToken,proto3" json:"refresh_token,omitempty"`
	AccessToken   string                 `protobuf:"bytes,2,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
	AccessExp     int64                  `protobuf:"varint,3,opt,name=access_exp,json=accessExp,proto3" json:"access_exp,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRefreshTokenResponse) Reset() {
	*x = GetRefreshTokenResponse{}
	mi := &file_authgate_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRefreshTokenResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRefreshTokenResponse) ProtoMessage() {}

func (x *GetRefreshTokenResponse) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRefreshTokenResponse.ProtoReflect.Descriptor instead.
func (*GetRefreshTokenResponse) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{1}
}

func (x *GetRefreshTokenResponse) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

func (x *GetRefreshTokenResponse) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

func (x *GetRefreshTokenResponse) GetAccessExp() int64 {
	if x != nil {
		return x.AccessExp
	}
	return 0
}

type GetAccessTokenRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Username      string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	RefreshToken  string                 `protobuf:"bytes,2,opt,name=refresh_token,json=refreshToken,proto3" json:"refresh_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAccessTokenRequest) Reset() {
	*x = GetAccessTokenRequest{}
	mi := &file_authgate_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAccessTokenRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAccessTokenRequest) ProtoMessage() {}

func (x *GetAccessTokenRequest) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAccessTokenRequest.ProtoReflect.Descriptor instead.
func (*GetAccessTokenRequest) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{2}
}

func (x *GetAccessTokenRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *GetAccessTokenRequest) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

type GetAccessTokenResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccessToken   string                 `protobuf:"bytes,1,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
	Exp           int64                  `protobuf:"varint,2,opt,name=exp,proto3" json:"exp,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAccessTokenResponse) Reset() {
	*x = GetAccessTokenResponse{}
	mi := &file_authgate_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAccessTokenResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAccessTokenResponse) ProtoMessage() {}

func (x *GetAccessTokenResponse) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAccessTokenResponse.ProtoReflect.Descriptor instead.
func (*GetAccessTokenResponse) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{3}
}

func (x *GetAccessTokenResponse) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

func (x *GetAccessTokenResponse) GetExp() int64 {
	if x != nil {
		return x.Exp
	}
	return 0
}

type SignupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Username      string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password      string                 `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	InviteCode    string                 `protobuf:"bytes,3,opt,name=invite_code,json=inviteCode,proto3" json:"invite_code,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SignupRequest) Reset() {
	*x = SignupRequest{}
	mi := &file_authgate_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SignupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SignupRequest) ProtoMessage() {}

func (x *SignupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SignupRequest.ProtoReflect.Descriptor instead.
func (*SignupRequest) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{4}
}

func (x *SignupRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *SignupRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

func (x *SignupRequest) GetInviteCode() string {
	if x != nil {
		return x.InviteCode
	}
	return ""
}

type SignupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RefreshToken  string                 `protobuf:"bytes,1,opt,name=refresh_token,json=refreshToken,proto3" json:"refresh_token,omitempty"`
	AccessToken   string                 `protobuf:"bytes,2,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
	AccessExp     int64                  `protobuf:"varint,3,opt,name=access_exp,json=accessExp,proto3" json:"access_exp,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SignupResponse) Reset() {
	*x = SignupResponse{}
	mi := &file_authgate_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SignupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SignupResponse) ProtoMessage() {}

func (x *SignupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SignupResponse.ProtoReflect.Descriptor instead.
func (*SignupResponse) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{5}
}

func (x *SignupResponse) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

func (x *SignupResponse) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

func (x *SignupResponse) GetAccessExp() int64 {
	if x != nil {
		return x.AccessExp
	}
	return 0
}

type ChangePasswordRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OldPassword   string                 `protobuf:"bytes,1,opt,name=old_password,json=oldPassword,proto3" json:"old_password,omitempty"`
	NewPassword   string                 `protobuf:"bytes,2,opt,name=new_password,json=newPassword,proto3" json:"new_password,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChangePasswordRequest) Reset() {
	*x = ChangePasswordRequest{}
	mi := &file_authgate_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChangePasswordRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChangePasswordRequest) ProtoMessage() {}

func (x *ChangePasswordRequest) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChangePasswordRequest.ProtoReflect.Descriptor instead.
func (*ChangePasswordRequest) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{6}
}

func (x *ChangePasswordRequest) GetOldPassword() string {
	if x != nil {
		return x.OldPassword
	}
	return ""
}

func (x *ChangePasswordRequest) GetNewPassword() string {
	if x != nil {
		return x.NewPassword
	}
	return ""
}

type ChangePasswordResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChangePasswordResponse) Reset() {
	*x = ChangePasswordResponse{}
	mi := &file_authgate_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChangePasswordResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChangePasswordResponse) ProtoMessage() {}

func (x *ChangePasswordResponse) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChangePasswordResponse.ProtoReflect.Descriptor instead.
func (*ChangePasswordResponse) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{7}
}

type GetRefreshTokensRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRefreshTokensRequest) Reset() {
	*x = GetRefreshTokensRequest{}
	mi := &file_authgate_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRefreshTokensRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRefreshTokensRequest) ProtoMessage() {}

func (x *GetRefreshTokensRequest) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRefreshTokensRequest.ProtoReflect.Descriptor instead.
func (*GetRefreshTokensRequest) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{8}
}

// RefreshToken is the client-facing view of a stored refresh token.
type RefreshToken struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Token         string                 `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	Origin        string                 `protobuf:"bytes,2,opt,name=origin,proto3" json:"origin,omitempty"`
	CreatedAt     int64                  `protobuf:"varint,3,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	LastUsedAt    int64                  `protobuf:"varint,4,opt,name=last_used_at,json=lastUsedAt,proto3" json:"last_used_at,omitempty"`
	ExpiresAt     int64                  `protobuf:"varint,5,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RefreshToken) Reset() {
	*x = RefreshToken{}
	mi := &file_authgate_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RefreshToken) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RefreshToken) ProtoMessage() {}

func (x *RefreshToken) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RefreshToken.ProtoReflect.Descriptor instead.
func (*RefreshToken) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{9}
}

func (x *RefreshToken) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

func (x *RefreshToken) GetOrigin() string {
	if x != nil {
		return x.Origin
	}
	return ""
}

func (x *RefreshToken) GetCreatedAt() int64 {
	if x != nil {
		return x.CreatedAt
	}
	return 0
}

func (x *RefreshToken) GetLastUsedAt() int64 {
	if x != nil {
		return x.LastUsedAt
	}
	return 0
}

func (x *RefreshToken) GetExpiresAt() int64 {
	if x != nil {
		return x.ExpiresAt
	}
	return 0
}

type GetRefreshTokensResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RefreshTokens []*RefreshToken        `protobuf:"bytes,1,rep,name=refresh_tokens,json=refreshTokens,proto3" json:"refresh_tokens,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRefreshTokensResponse) Reset() {
	*x = GetRefreshTokensResponse{}
	mi := &file_authgate_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRefreshTokensResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRefreshTokensResponse) ProtoMessage() {}

func (x *GetRefreshTokensResponse) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRefreshTokensResponse.ProtoReflect.Descriptor instead.
func (*GetRefreshTokensResponse) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{10}
}

func (x *GetRefreshTokensResponse) GetRefreshTokens() []*RefreshToken {
	if x != nil {
		return x.RefreshTokens
	}
	return nil
}

type DeleteRefreshTokenRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RefreshToken  string                 `protobuf:"bytes,1,opt,name=refresh_token,json=refreshToken,proto3" json:"refresh_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteRefreshTokenRequest) Reset() {
	*x = DeleteRefreshTokenRequest{}
	mi := &file_authgate_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteRefreshTokenRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteRefreshTokenRequest) ProtoMessage() {}

func (x *DeleteRefreshTokenRequest) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteRefreshTokenRequest.ProtoReflect.Descriptor instead.
func (*DeleteRefreshTokenRequest) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{11}
}

func (x *DeleteRefreshTokenRequest) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

type DeleteRefreshTokenResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteRefreshTokenResponse) Reset() {
	*x = DeleteRefreshTokenResponse{}
	mi := &file_authgate_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteRefreshTokenResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteRefreshTokenResponse) ProtoMessage() {}

func (x *DeleteRefreshTokenResponse) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteRefreshTokenResponse.ProtoReflect.Descriptor instead.
func (*DeleteRefreshTokenResponse) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{12}
}

type CreateInviteTokenRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateInviteTokenRequest) Reset() {
	*x = CreateInviteTokenRequest{}
	mi := &file_authgate_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateInviteTokenRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateInviteTokenRequest) ProtoMessage() {}

func (x *CreateInviteTokenRequest) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateInviteTokenRequest.ProtoReflect.Descriptor instead.
func (*CreateInviteTokenRequest) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{13}
}

// InviteToken is the client-facing view of an invite. token is the opaque
// encoded form the invitee passes to Signup.
type InviteToken struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Token         string                 `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	CreatedAt     int64                  `protobuf:"varint,2,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UsedAt        int64                  `protobuf:"varint,3,opt,name=used_at,json=usedAt,proto3" json:"used_at,omitempty"`
	UsedBy        string                 `protobuf:"bytes,4,opt,name=used_by,json=usedBy,proto3" json:"used_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InviteToken) Reset() {
	*x = InviteToken{}
	mi := &file_authgate_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InviteToken) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InviteToken) ProtoMessage() {}

func (x *InviteToken) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InviteToken.ProtoReflect.Descriptor instead.
func (*InviteToken) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{14}
}

func (x *InviteToken) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

func (x *InviteToken) GetCreatedAt() int64 {
	if x != nil {
		return x.CreatedAt
	}
	return 0
}

func (x *InviteToken) GetUsedAt() int64 {
	if x != nil {
		return x.UsedAt
	}
	return 0
}

func (x *InviteToken) GetUsedBy() string {
	if x != nil {
		return x.UsedBy
	}
	return ""
}

type CreateInviteTokenResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Token         *InviteToken           `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateInviteTokenResponse) Reset() {
	*x = CreateInviteTokenResponse{}
	mi := &file_authgate_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateInviteTokenResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateInviteTokenResponse) ProtoMessage() {}

func (x *CreateInviteTokenResponse) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateInviteTokenResponse.ProtoReflect.Descriptor instead.
func (*CreateInviteTokenResponse) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{15}
}

func (x *CreateInviteTokenResponse) GetToken() *InviteToken {
	if x != nil {
		return x.Token
	}
	return nil
}

type GetInviteTokensRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInviteTokensRequest) Reset() {
	*x = GetInviteTokensRequest{}
	mi := &file_authgate_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInviteTokensRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInviteTokensRequest) ProtoMessage() {}

func (x *GetInviteTokensRequest) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetInviteTokensRequest.ProtoReflect.Descriptor instead.
func (*GetInviteTokensRequest) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{16}
}

type GetInviteTokensResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tokens        []*InviteToken         `protobuf:"bytes,1,rep,name=tokens,proto3" json:"tokens,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInviteTokensResponse) Reset() {
	*x = GetInviteTokensResponse{}
	mi := &file_authgate_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInviteTokensResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInviteTokensResponse) ProtoMessage() {}

func (x *GetInviteTokensResponse) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetInviteTokensResponse.ProtoReflect.Descriptor instead.
func (*GetInviteTokensResponse) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{17}
}

func (x *GetInviteTokensResponse) GetTokens() []*InviteToken {
	if x != nil {
		return x.Tokens
	}
	return nil
}

type DeleteInviteTokenRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Token         string                 `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteInviteTokenRequest) Reset() {
	*x = DeleteInviteTokenRequest{}
	mi := &file_authgate_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteInviteTokenRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteInviteTokenRequest) ProtoMessage() {}

func (x *DeleteInviteTokenRequest) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteInviteTokenRequest.ProtoReflect.Descriptor instead.
func (*DeleteInviteTokenRequest) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{18}
}

func (x *DeleteInviteTokenRequest) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

type DeleteInviteTokenResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteInviteTokenResponse) Reset() {
	*x = DeleteInviteTokenResponse{}
	mi := &file_authgate_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteInviteTokenResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteInviteTokenResponse) ProtoMessage() {}

func (x *DeleteInviteTokenResponse) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteInviteTokenResponse.ProtoReflect.Descriptor instead.
func (*DeleteInviteTokenResponse) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{19}
}

type RefreshTokenRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Origin        string                 `protobuf:"bytes,1,opt,name=origin,proto3" json:"origin,omitempty"`
	CreatedAt     int64                  `protobuf:"varint,2,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	LastUsedAt    int64                  `protobuf:"varint,3,opt,name=last_used_at,json=lastUsedAt,proto3" json:"last_used_at,omitempty"`
	ExpiresAt     int64                  `protobuf:"varint,4,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RefreshTokenRecord) Reset() {
	*x = RefreshTokenRecord{}
	mi := &file_authgate_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RefreshTokenRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RefreshTokenRecord) ProtoMessage() {}

func (x *RefreshTokenRecord) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RefreshTokenRecord.ProtoReflect.Descriptor instead.
func (*RefreshTokenRecord) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{20}
}

func (x *RefreshTokenRecord) GetOrigin() string {
	if x != nil {
		return x.Origin
	}
	return ""
}

func (x *RefreshTokenRecord) GetCreatedAt() int64 {
	if x != nil {
		return x.CreatedAt
	}
	return 0
}

func (x *RefreshTokenRecord) GetLastUsedAt() int64 {
	if x != nil {
		return x.LastUsedAt
	}
	return 0
}

func (x *RefreshTokenRecord) GetExpiresAt() int64 {
	if x != nil {
		return x.ExpiresAt
	}
	return 0
}

type InviteRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CreatedAt     int64                  `protobuf:"varint,1,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UsedAt        int64                  `protobuf:"varint,2,opt,name=used_at,json=usedAt,proto3" json:"used_at,omitempty"`
	UsedBy        string                 `protobuf:"bytes,3,opt,name=used_by,json=usedBy,proto3" json:"used_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InviteRecord) Reset() {
	*x = InviteRecord{}
	mi := &file_authgate_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InviteRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InviteRecord) ProtoMessage() {}

func (x *InviteRecord) ProtoReflect() protoreflect.Message {
	mi := &file_authgate_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InviteRecord.ProtoReflect.Descriptor instead.
func (*InviteRecord) Descriptor() ([]byte, []int) {
	return file_authgate_proto_rawDescGZIP(), []int{21}
}

func (x *InviteRecord) GetCreatedAt() int64 {
	if x != nil {
		return x.CreatedAt
	}
	return 0
}

func (x *InviteRecord) GetUsedAt() int64 {
	if x != nil {
		return x.UsedAt
	}
	return 0
}

func (x *InviteRecord) GetUsedBy() string {
	if x != nil {
		return x.UsedBy
	}
	return ""
}

var File_authgate_proto protoreflect.FileDescriptor

const file_authgate_proto_rawDesc = "" +
	"\n" +
	"\x0eauthgate.proto\x12\vauthgate.v1\"P\n" +
	"\x16GetRefreshTokenRequest\x12\x1a\n" +
	"\busername\x18\x01 \x01(\tR\busername\x12\x1a\n" +
	"\bpassword\x18\x02 \x01(\tR\bpassword\"\x80\x01\n" +
	"\x17GetRefreshTokenResponse\x12#\n" +
	"\rrefresh_token\x18\x01 \x01(\tR\frefreshToken\x12!\n" +
	"\faccess_token\x18\x02 \x01(\tR\vaccessToken\x12\x1d\n" +
	"\n" +
	"access_exp\x18\x03 \x01(\x03R\taccessExp\"X\n" +
	"\x15GetAccessTokenRequest\x12\x1a\n" +
	"\busername\x18\x01 \x01(\tR\busername\x12#\n" +
	"\rrefresh_token\x18\x02 \x01(\tR\frefreshToken\"M\n" +
	"\x16GetAccessTokenResponse\x12!\n" +
	"\faccess_token\x18\x01 \x01(\tR\vaccessToken\x12\x10\n" +
	"\x03exp\x18\x02 \x01(\x03R\x03exp\"h\n" +
	"\rSignupRequest\x12\x1a\n" +
	"\busername\x18\x01 \x01(\tR\busername\x12\x1a\n" +
	"\bpassword\x18\x02 \x01(\tR\bpassword\x12\x1f\n" +
	"\vinvite_code\x18\x03 \x01(\tR\n" +
	"inviteCode\"w\n" +
	"\x0eSignupResponse\x12#\n" +
	"\rrefresh_token\x18\x01 \x01(\tR\frefreshToken\x12!\n" +
	"\faccess_token\x18\x02 \x01(\tR\vaccessToken\x12\x1d\n" +
	"\n" +
	"access_exp\x18\x03 \x01(\x03R\taccessExp\"]\n" +
	"\x15ChangePasswordRequest\x12!\n" +
	"\fold_password\x18\x01 \x01(\tR\voldPassword\x12!\n" +
	"\fnew_password\x18\x02 \x01(\tR\vnewPassword\"\x18\n" +
	"\x16ChangePasswordResponse\"\x19\n" +
	"\x17GetRefreshTokensRequest\"\x9c\x01\n" +
	"\fRefreshToken\x12\x14\n" +
	"\x05token\x18\x01 \x01(\tR\x05token\x12\x16\n" +
	"\x06origin\x18\x02 \x01(\tR\x06origin\x12\x1d\n" +
	"\n" +
	"created_at\x18\x03 \x01(\x03R\tcreatedAt\x12 \n" +
	"\flast_used_at\x18\x04 \x01(\x03R\n" +
	"lastUsedAt\x12\x1d\n" +
	"\n" +
	"expires_at\x18\x05 \x01(\x03R\texpiresAt\"\\\n" +
	"\x18GetRefreshTokensResponse\x12@\n" +
	"\x0erefresh_tokens\x18\x01 \x03(\v2\x19.authgate.v1.RefreshTokenR\rrefreshTokens\"@\n" +
	"\x19DeleteRefreshTokenRequest\x12#\n" +
	"\rrefresh_token\x18\x01 \x01(\tR\frefreshToken\"\x1c\n" +
	"\x1aDeleteRefreshTokenResponse\"\x1a\n" +
	"\x18CreateInviteTokenRequest\"t\n" +
	"\vInviteToken\x12\x14\n" +
	"\x05token\x18\x01 \x01(\tR\x05token\x12\x1d\n" +
	"\n" +
	"created_at\x18\x02 \x01(\x03R\tcreatedAt\x12\x17\n" +
	"\aused_at\x18\x03 \x01(\x03R\x06usedAt\x12\x17\n" +
	"\aused_by\x18\x04 \x01(\tR\x06usedBy\"K\n" +
	"\x19CreateInviteTokenResponse\x12.\n" +
	"\x05token\x18\x01 \x01(\v2\x18.authgate.v1.InviteTokenR\x05token\"\x18\n" +
	"\x16GetInviteTokensRequest\"K\n" +
	"\x17GetInviteTokensResponse\x120\n" +
	"\x06tokens\x18\x01 \x03(\v2\x18.authgate.v1.InviteTokenR\x06tokens\"0\n" +
	"\x18DeleteInviteTokenRequest\x12\x14\n" +
	"\x05token\x18\x01 \x01(\tR\x05token\"\x1b\n" +
	"\x19DeleteInviteTokenResponse\"\x8c\x01\n" +
	"\x12RefreshTokenRecord\x12\x16\n" +
	"\x06origin\x18\x01 \x01(\tR\x06origin\x12\x1d\n" +
	"\n" +
	"created_at\x18\x02 \x01(\x03R\tcreatedAt\x12 \n" +
	"\flast_used_at\x18\x03 \x01(\x03R\n" +
	"lastUsedAt\x12\x1d\n" +
	"\n" +
	"expires_at\x18\x04 \x01(\x03R\texpiresAt\"_\n" +
	"\fInviteRecord\x12\x1d\n" +
	"\n" +
	"created_at\x18\x01 \x01(\x03R\tcreatedAt\x12\x17\n" +
	"\aused_at\x18\x02 \x01(\x03R\x06usedAt\x12\x17\n" +
	"\aused_by\x18\x03 \x01(\tR\x06usedBy2\x82\x02\n" +
	"\x04Auth\x12\\\n" +
	"\x0fGetRefreshToken\x12#.authgate.v1.GetRefreshTokenRequest\x1a$.authgate.v1.GetRefreshTokenResponse\x12Y\n" +
	"\x0eGetAccessToken\x12\".authgate.v1.GetAccessTokenRequest\x1a#.authgate.v1.GetAccessTokenResponse\x12A\n" +
	"\x06Signup\x12\x1a.authgate.v1.SignupRequest\x1a\x1b.authgate.v1.SignupResponse2\xcf\x04\n" +
	"\x04User\x12Y\n" +
	"\x0eChangePassword\x12\".authgate.v1.ChangePasswordRequest\x1a#.authgate.v1.ChangePasswordResponse\x12_\n" +
	"\x10GetRefreshTokens\x12$.authgate.v1.GetRefreshTokensRequest\x1a%.authgate.v1.GetRefreshTokensResponse\x12e\n" +
	"\x12DeleteRefreshToken\x12&.authgate.v1.DeleteRefreshTokenRequest\x1a'.authgate.v1.DeleteRefreshTokenResponse\x12b\n" +
	"\x11CreateInviteToken\x12%.authgate.v1.CreateInviteTokenRequest\x1a&.authgate.v1.CreateInviteTokenResponse\x12\\\n" +
	"\x0fGetInviteTokens\x12#.authgate.v1.GetInviteTokensRequest\x1a$.authgate.v1.GetInviteTokensResponse\x12b\n" +
	"\x11DeleteInviteToken\x12%.authgate.v1.DeleteInviteTokenRequest\x1a&.authgate.v1.DeleteInviteTokenResponseB-Z+github.com/mlebedev/authgate/internal/protob\x06proto3"

var (
	file_authgate_proto_rawDescOnce sync.Once
	file_authgate_proto_rawDescData []byte
)

func file_authgate_proto_rawDescGZIP() []byte {
	file_authgate_proto_rawDescOnce.Do(func() {
		file_authgate_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_authgate_proto_rawDesc), len(file_authgate_proto_rawDesc)))
	})
	return file_authgate_proto_rawDescData
}

var file_authgate_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_authgate_proto_goTypes = []any{
	(*GetRefreshTokenRequest)(nil),     // 0: authgate.v1.GetRefreshTokenRequest
	(*GetRefreshTokenResponse)(nil),    // 1: authgate.v1.GetRefreshTokenResponse
	(*GetAccessTokenRequest)(nil),      // 2: authgate.v1.GetAccessTokenRequest
	(*GetAccessTokenResponse)(nil),     // 3: authgate.v1.GetAccessTokenResponse
	(*SignupRequest)(nil),              // 4: authgate.v1.SignupRequest
	(*SignupResponse)(nil),             // 5: authgate.v1.SignupResponse
	(*ChangePasswordRequest)(nil),      // 6: authgate.v1.ChangePasswordRequest
	(*ChangePasswordResponse)(nil),     // 7: authgate.v1.ChangePasswordResponse
	(*GetRefreshTokensRequest)(nil),    // 8: authgate.v1.GetRefreshTokensRequest
	(*RefreshToken)(nil),               // 9: authgate.v1.RefreshToken
	(*GetRefreshTokensResponse)(nil),   // 10: authgate.v1.GetRefreshTokensResponse
	(*DeleteRefreshTokenRequest)(nil),  // 11: authgate.v1.DeleteRefreshTokenRequest
	(*DeleteRefreshTokenResponse)(nil), // 12: authgate.v1.DeleteRefreshTokenResponse
	(*CreateInviteTokenRequest)(nil),   // 13: authgate.v1.CreateInviteTokenRequest
	(*InviteToken)(nil),                // 14: authgate.v1.InviteToken
	(*CreateInviteTokenResponse)(nil),  // 15: authgate.v1.CreateInviteTokenResponse
	(*GetInviteTokensRequest)(nil),     // 16: authgate.v1.GetInviteTokensRequest
	(*GetInviteTokensResponse)(nil),    // 17: authgate.v1.GetInviteTokensResponse
	(*DeleteInviteTokenRequest)(nil),   // 18: authgate.v1.DeleteInviteTokenRequest
	(*DeleteInviteTokenResponse)(nil),  // 19: authgate.v1.DeleteInviteTokenResponse
	(*RefreshTokenRecord)(nil),         // 20: authgate.v1.RefreshTokenRecord
	(*InviteRecord)(nil),               // 21: authgate.v1.InviteRecord
}
var file_authgate_proto_depIdxs = []int32{
	9,  // 0: authgate.v1.GetRefreshTokensResponse.refresh_tokens:type_name -> authgate.v1.RefreshToken
	14, // 1: authgate.v1.CreateInviteTokenResponse.token:type_name -> authgate.v1.InviteToken
	14, // 2: authgate.v1.GetInviteTokensResponse.tokens:type_name -> authgate.v1.InviteToken
	0,  // 3: authgate.v1.Auth.GetRefreshToken:input_type -> authgate.v1.GetRefreshTokenRequest
	2,  // 4: authgate.v1.Auth.GetAccessToken:input_type -> authgate.v1.GetAccessTokenRequest
	4,  // 5: authgate.v1.Auth.Signup:input_type -> authgate.v1.SignupRequest
	6,  // 6: authgate.v1.User.ChangePassword:input_type -> authgate.v1.ChangePasswordRequest
	8,  // 7: authgate.v1.User.GetRefreshTokens:input_type -> authgate.v1.GetRefreshTokensRequest
	11, // 8: authgate.v1.User.DeleteRefreshToken:input_type -> authgate.v1.DeleteRefreshTokenRequest
	13, // 9: authgate.v1.User.CreateInviteToken:input_type -> authgate.v1.CreateInviteTokenRequest
	16, // 10: authgate.v1.User.GetInviteTokens:input_type -> authgate.v1.GetInviteTokensRequest
	18, // 11: authgate.v1.User.DeleteInviteToken:input_type -> authgate.v1.DeleteInviteTokenRequest
	1,  // 12: authgate.v1.Auth.GetRefreshToken:output_type -> authgate.v1.GetRefreshTokenResponse
	3,  // 13: authgate.v1.Auth.GetAccessToken:output_type -> authgate.v1.GetAccessTokenResponse
	5,  // 14: authgate.v1.Auth.Signup:output_type -> authgate.v1.SignupResponse
	7,  // 15: authgate.v1.User.ChangePassword:output_type -> authgate.v1.ChangePasswordResponse
	10, // 16: authgate.v1.User.GetRefreshTokens:output_type -> authgate.v1.GetRefreshTokensResponse
	12, // 17: authgate.v1.User.DeleteRefreshToken:output_type -> authgate.v1.DeleteRefreshTokenResponse
	15, // 18: authgate.v1.User.CreateInviteToken:output_type -> authgate.v1.CreateInviteTokenResponse
	17, // 19: authgate.v1.User.GetInviteTokens:output_type -> authgate.v1.GetInviteTokensResponse
	19, // 20: authgate.v1.User.DeleteInviteToken:output_type -> authgate.v1.DeleteInviteTokenResponse
	12, // [12:21] is the sub-list for method output_type
	3,  // [3:12] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_authgate_proto_init() }
func file_authgate_proto_init() {
	if File_authgate_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_authgate_proto_rawDesc), len(file_authgate_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_authgate_proto_goTypes,
		DependencyIndexes: file_authgate_proto_depIdxs,
		MessageInfos:      file_authgate_proto_msgTypes,
	}.Build()
	File_authgate_proto = out.File
	file_authgate_proto_goTypes = nil
	file_authgate_proto_depIdxs = nil
}
