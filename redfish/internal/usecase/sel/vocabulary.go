package sel

// DefaultSensorType is reported for IPMI sensor types without a Redfish name.
const DefaultSensorType = "Other Units-based Sensor"

var eventTypes = map[string]string{
	"Asserted":                                    "Assert",
	"Deasserted":                                  "Deassert",
	"Lower Non-critical going low":                "Lower Non-critical - going low",
	"Lower Non-critical going high":               "Lower Non-critical - going high",
	"Lower Critical going low":                    "Lower Critical - going low",
	"Lower Critical going high":                   "Lower Critical - going high",
	"Lower Non-recoverable going low":             "Lower Non-recoverable - going low",
	"Lower Non-recoverable going high":            "Lower Non-recoverable - going high",
	"Upper Non-critical going low":                "Upper Non-critical - going low",
	"Upper Non-critical going high":               "Upper Non-critical - going high",
	"Upper Critical going low":                    "Upper Critical - going low",
	"Upper Critical going high":                   "Upper Critical - going high",
	"Upper Non-recoverable going low":             "Upper Non-recoverable - going low",
	"Upper Non-recoverable going high":            "Upper Non-recoverable - going high",
	"Predictive Failure Deasserted":               "Predictive Failure deasserted",
	"Predictive Failure Asserted":                 "Predictive Failure asserted",
	"Transition to Non-critical from OK":          "Transition to Non-Critical from OK",
	"Device Absent":                               "Device Removed / Device Absent",
	"Device Present":                              "Device Inserted / Device Present",
	"Non-Redundant: Sufficient from Redundant":    "Non-redundant:Sufficient Resources from Redundant",
	"Non-Redundant: Sufficient from Insufficient": "Non-redundant:Sufficient Resources from Insufficient Resources",
	"Non-Redundant: Insufficient Resources":       "Non-redundant:Insufficient Resources",
	"Redundancy Degraded from Fully Redundant":    "Redundancy Degraded from Fully Redundant",
	"Redundancy Degraded from Non-Redundant":      "Redundancy Degraded from Fully Redundant",
}

var sensorTypes = map[string]string{
	"Temperature":                 "Temperature",
	"Voltage":                     "Voltage",
	"Current":                     "Current",
	"Fan":                         "Fan",
	"Physical Security":           "Physical Chassis Security",
	"Platform Security":           "Platform Security Violation Attempt",
	"Processor":                   "Processor",
	"Power Supply":                "Power Supply / Converter",
	"Power Unit":                  "PowerUnit",
	"Cooling Device":              "CoolingDevice",
	"Memory":                      "Memory",
	"Drive Slot":                  "Drive Slot/Bay",
	"System Firmware Progress":    "System Firmware Progress",
	"Event Logging Disabled":      "Event Logging Disabled",
	"Watchdog 1":                  "Watchdog",
	"System Event":                "System Event",
	"Critical Interrupt":          "Critical Interrupt",
	"Button":                      "Button/Switch",
	"Module/Board":                "Module/Board",
	"Microcontroller/Coprocessor": "Microcontroller/Coprocessor",
	"Add-in Card":                 "Add-in Card",
	"Chassis":                     "Chassis",
	"Chip Set":                    "ChipSet",
	"Other FRU":                   "Other FRU",
	"Cable/Interconnect":          "Cable/Interconnect",
	"Terminator":                  "Terminator",
	"System Boot Initiated":       "SystemBoot/Restart",
	"Boot Error":                  "Boot Error",
	"OS Boot":                     "BaseOSBoot/InstallationStatus",
	"OS Stop/Shutdown":            "OS Stop/Shutdown",
	"Slot/Connector":              "Slot/Connector",
	"System ACPI Power State":     "System ACPI PowerState",
	"Watchdog 2":                  "Watchdog",
	"Platform Alert":              "Platform Alert",
	"Entity Presence":             "Entity Presence",
	"Monitor ASIC/IC":             "Monitor ASIC/IC",
	"LAN":                         "LAN",
	"Management Subsystem Health": "Management Subsystem Health",
	"Battery":                     "Battery",
	"Version Change":              "Version Change",
	"FRU State":                   "FRUState",
}

// EventType maps an IPMI event value to its Redfish wording. Unknown values pass through.
func EventType(value string) string {
	if v, ok := eventTypes[value]; ok {
		return v
	}

	return value
}

// SensorType maps an IPMI sensor type to its Redfish name.
func SensorType(ipmiType string) string {
	if v, ok := sensorTypes[ipmiType]; ok {
		return v
	}

	return DefaultSensorType
}

// EventTypeCount reports the number of known event values.
func EventTypeCount() int { return len(eventTypes) }

// SensorTypeCount reports the number of known sensor types.
func SensorTypeCount() int { return len(sensorTypes) }
