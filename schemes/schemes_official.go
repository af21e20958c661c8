package schemes

// Official is a sorted list of IANA-registered URI schemes that take an
// authority component (i.e. are followed by "://"), checked into the
// repository as a static snapshot rather than fetched from the IANA URI
// scheme registry at build time. Schemes that
// are colon-only (no authority, e.g. "mailto") live in NoAuthority instead,
// and widely-used but unregistered schemes live in Unofficial.
var Official = []string{
	`afp`,
	`coap`,
	`coaps`,
	`dict`,
	`dns`,
	`feed`,
	`ftp`,
	`ftps`,
	`git`,
	`gopher`,
	`http`,
	`https`,
	`imap`,
	`imaps`,
	`irc`,
	`ircs`,
	`ldap`,
	`ldaps`,
	`mms`,
	`msrp`,
	`mtqp`,
	`nfs`,
	`nntp`,
	`nntps`,
	`pop`,
	`pops`,
	`redis`,
	`rsync`,
	`rtmp`,
	`rtsp`,
	`rtsps`,
	`sftp`,
	`smb`,
	`snmp`,
	`ssh`,
	`svn`,
	`telnet`,
	`vnc`,
	`ws`,
	`wss`,
}
