package pl011

// Version identifies the driver build. Release builds set it with
//
//	-ldflags "-X bootconsole-go/drivers/pl011.Version=v1.2.3"
var Version = "dev"
