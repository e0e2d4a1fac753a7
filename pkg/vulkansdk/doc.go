/*
Package vulkansdk checks for the Vulkan SDK the engine builds against and
downloads its installer when it is missing.

	+-----------+     +-----------+     +------------+
	|  Resolve  | --> |   Check   | --> |  Download  |
	|  (paths)  |     | (on disk) |     | (LunarG)   |
	+-----------+     +-----------+     +------------+

Only Windows and macOS have a known layout. The installer is stored inside
the SDK directory it will install into; running it is left to the user.
*/
package vulkansdk
