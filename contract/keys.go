package contract

// Storage keys are compact byte strings: a one-byte prefix from constants.go
// followed by an inline-packed id. Keeping keys short keeps rent low since
// the host bills every stored byte, key included.

// packU64LEInline appends v to dst in little-endian order.
func packU64LEInline(dst []byte, v uint64) []byte {
	return append(dst,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56),
	)
}

// proposalKey addresses one encoded proposal record.
func proposalKey(id uint64) string {
	buf := make([]byte, 0, 9)
	buf = append(buf, kProposalMeta)
	buf = packU64LEInline(buf, id)
	return string(buf)
}

// badgeKey addresses one encoded badge record.
func badgeKey(id string) string {
	buf := make([]byte, 0, 1+len(id))
	buf = append(buf, kBadgeMeta)
	buf = append(buf, id...)
	return string(buf)
}

// scalarKey addresses a singleton record behind its prefix byte.
func scalarKey(prefix byte) string {
	return string([]byte{prefix})
}
