// Package sign talks IBIS to destination signs on a shared serial bus.
//
// A Sign wraps any io.ReadWriter, normally a *transport.Port:
//
//	port, err := transport.Open("/dev/ttyUSB0")
//	if err != nil {
//	    return err
//	}
//	defer port.Close()
//
//	s := sign.New(port)
//	line := 7
//	err = s.Switch(ctx, 42, &line) // l007, then z042
//
// Switching destinations is fire-and-forget; the sign does not answer.
// Status and Version expect a reply before the transport's read timeout.
// Scan probes addresses 0 to 15 and treats a timeout as an empty address.
package sign
