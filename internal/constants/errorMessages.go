package constants

const (
	MsgInvalidBody       = "Invalid request body"
	MsgUnauthorized      = "Unauthorized"
	MsgInvalidLogin      = "Invalid username or password"
	MsgPilotNotFound     = "Pilot not found"
	MsgDuplicateCallsign = "This callsign is already in use"
	MsgStoreUnavailable  = "Roster store unavailable"
)
