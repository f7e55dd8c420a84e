package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the access
// token on protected requests.
const AccessTokenHeaderName = "access_token"

// KeySeparator joins an owner identifier and a token/suffix into a
// composite store key. Usernames must not contain it.
const KeySeparator = ":"
