package bench

import (
	"encoding/binary"
	"math/bits"
	"net/netip"
	"sync"

	"github.com/pkg/errors"
)

// DefaultStartCIDR seeds subnet allocation when a caller supplies no
// starting block.
const DefaultStartCIDR = "10.2.0.0/24"

// DefaultCIDRPool is the process-wide pool used by services that have no
// pool injected. Sharing one pool keeps concurrently running scenarios from
// receiving overlapping subnets.
var DefaultCIDRPool = NewCIDRPool()

// CIDRPool hands out consecutive blocks of the same width as a starting
// CIDR. Each start block has its own counter.
type CIDRPool struct {
	mu   sync.Mutex
	next map[string]uint64
}

func NewCIDRPool() *CIDRPool {
	return &CIDRPool{next: make(map[string]uint64)}
}

// Next returns the next unused block after start. The start block itself is
// never handed out, which leaves it free for statically configured
// resources.
func (p *CIDRPool) Next(start string) (string, error) {
	prefix, err := netip.ParsePrefix(start)
	if err != nil {
		return "", errors.Wrapf(err, "parsing start cidr %q", start)
	}
	if prefix.Bits() == 0 {
		return "", errors.Errorf("start cidr %q has no network bits", start)
	}
	prefix = prefix.Masked()

	p.mu.Lock()
	p.next[start]++
	n := p.next[start]
	p.mu.Unlock()

	out, err := offsetPrefix(prefix, n)
	if err != nil {
		return "", errors.Wrapf(err, "advancing %q by %d blocks", start, n)
	}
	return out.String(), nil
}

func offsetPrefix(prefix netip.Prefix, n uint64) (netip.Prefix, error) {
	addr := prefix.Addr()
	hostBits := uint(addr.BitLen() - prefix.Bits())

	if addr.Is4() {
		if n > uint64(^uint32(0))>>hostBits {
			return netip.Prefix{}, errors.New("address space exhausted")
		}
		raw := addr.As4()
		moved := uint64(binary.BigEndian.Uint32(raw[:])) + n<<hostBits
		if moved > uint64(^uint32(0)) {
			return netip.Prefix{}, errors.New("address space exhausted")
		}
		binary.BigEndian.PutUint32(raw[:], uint32(moved))
		return netip.PrefixFrom(netip.AddrFrom4(raw), prefix.Bits()), nil
	}

	// Advance the 128 bit address as a pair of 64 bit words.
	var deltaHi, deltaLo uint64
	if hostBits >= 64 {
		s := hostBits - 64
		if s > 0 && n > ^uint64(0)>>s {
			return netip.Prefix{}, errors.New("address space exhausted")
		}
		deltaHi = n << s
	} else {
		deltaLo = n << hostBits
		if hostBits > 0 {
			deltaHi = n >> (64 - hostBits)
		}
	}

	raw := addr.As16()
	lo, carry := bits.Add64(binary.BigEndian.Uint64(raw[8:]), deltaLo, 0)
	hi, carry := bits.Add64(binary.BigEndian.Uint64(raw[:8]), deltaHi, carry)
	if carry != 0 {
		return netip.Prefix{}, errors.New("address space exhausted")
	}
	binary.BigEndian.PutUint64(raw[:8], hi)
	binary.BigEndian.PutUint64(raw[8:], lo)
	return netip.PrefixFrom(netip.AddrFrom16(raw), prefix.Bits()), nil
}
