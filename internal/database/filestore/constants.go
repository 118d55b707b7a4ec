package filestore

import "os"

const (
	// ProfilesDir is the subdirectory of the data dir holding one directory per owner
	ProfilesDir = "profiles"

	// DocumentExt is the extension of a stored profile document
	DocumentExt = ".json"

	// tempPattern marks in-flight writes; listings ignore anything matching it
	tempPrefix  = ".tmp-"
	tempPattern = tempPrefix + "*"
)

// File permissions
const (
	DirPermissions  os.FileMode = 0o755
	FilePermissions os.FileMode = 0o644
)

// Log messages
const (
	LogMsgSkippingMalformedProfile = "Skipping malformed profile document"
	LogMsgSkippingUnreadableFile   = "Skipping unreadable profile file"
	LogMsgTempCleanupFailed        = "Failed to remove temp profile file"
)
